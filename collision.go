package feather

import (
	"github.com/talusphys/convex/actor"
	"github.com/talusphys/convex/constraint"
	"github.com/talusphys/convex/convex"
)

const STIFF_COMPLIANCE = CONCRETE_COMPLIANCE

const (
	CONCRETE_COMPLIANCE = 0.04e-9
	WOOD_COMPLIANCE     = 0.16e-9
	LEATHER_COMPLIANCE  = 14e-8
	TENDON_COMPLIANCE   = 0.2e-7
	RUBBER_COMPLIANCE   = 1e-6
	MUSCLE_COMPLIANCE   = 0.2e-3
	FAT_COMPLIANCE      = 1e-3
)

// CollisionPair represents a pair of rigid bodies that potentially collide
type CollisionPair struct {
	BodyA *actor.RigidBody
	BodyB *actor.RigidBody
}

// BroadPhase performs broad-phase collision detection using AABB overlap tests
// It returns pairs of bodies whose AABBs overlap and might be colliding
// This is an O(nÂ²) brute-force approach suitable for small numbers of bodies
func BroadPhase(bodies []*actor.RigidBody) []CollisionPair {
	pairs := make([]CollisionPair, 0)

	// Brute force: test all pairs
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			bodyA := bodies[i]
			bodyB := bodies[j]

			// Skip if both bodies are static (static-static collisions don't matter)
			if bodyA.BodyType == actor.BodyTypeStatic && bodyB.BodyType == actor.BodyTypeStatic {
				continue
			}
			if bodyA.IsSleeping && bodyB.IsSleeping {
				continue
			}

			// Compute AABBs for both bodies
			aabbA := bodyA.Shape.GetAABB()
			aabbB := bodyB.Shape.GetAABB()

			// Check if AABBs overlap
			if aabbA.Overlaps(aabbB) {
				pairs = append(pairs, CollisionPair{bodyA, bodyB})
			}
		}
	}

	return pairs
}

// NarrowPhase runs the convex core against every broad-phase candidate
// pair and returns one ContactConstraint per confirmed overlap. Trigger
// pairs are included too (Events.recordCollisions relies on seeing them
// to track Enter/Stay/Exit) and are stripped from the solver's input
// there, not here.
func NarrowPhase(pairs []CollisionPair, cfg convex.Config) []*constraint.ContactConstraint {
	contacts := make([]*constraint.ContactConstraint, 0)

	for _, pair := range pairs {
		result, err := convex.Detect(pair.BodyA, pair.BodyB, cfg)
		if err != nil || result.Outcome != convex.Overlap {
			continue
		}

		contactPosition := result.ContactA.Add(result.ContactB).Mul(0.5)

		contacts = append(contacts, &constraint.ContactConstraint{
			BodyA:  pair.BodyA,
			BodyB:  pair.BodyB,
			Normal: result.Normal,
			Points: []constraint.ContactPoint{
				{Position: contactPosition, Penetration: result.Depth},
			},
		})
	}

	return contacts
}

// BroadPhaseGrid uses a SpatialGrid to narrow down candidate pairs in
// better than O(n²) for scenes with many bodies, falling back to the same
// static/static and sleeping/sleeping skips BroadPhase applies. workers
// above 1 switches to the grid's channel-based concurrent scan.
func BroadPhaseGrid(grid *SpatialGrid, bodies []*actor.RigidBody, workers int) []CollisionPair {
	grid.Clear()
	for i, body := range bodies {
		grid.Insert(i, body)
	}

	if workers > 1 && len(bodies) > 0 {
		pairs := make([]CollisionPair, 0, len(bodies)/2)
		for p := range grid.FindPairsParallel(bodies, workers) {
			pairs = append(pairs, CollisionPair{BodyA: p.BodyA, BodyB: p.BodyB})
		}
		return pairs
	}

	rawPairs := grid.FindPairs(bodies)
	pairs := make([]CollisionPair, 0, len(rawPairs))
	for _, p := range rawPairs {
		pairs = append(pairs, CollisionPair{BodyA: p.BodyA, BodyB: p.BodyB})
	}
	return pairs
}
