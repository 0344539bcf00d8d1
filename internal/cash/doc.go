// Package cash implements CASH (Clustering in Arbitrary Subspaces based on
// the Hough transform) correlation clustering.
//
// The algorithm discretizes the rotation-angle space into a grid, then
// enumerates every angle vector over that grid. For each angle vector it
// projects every still-unclustered point onto a one-dimensional "delta"
// value and greedily extracts the densest eps-neighborhoods from the
// projected line as clusters belonging to that subspace orientation.
// Clustered points are removed from the working set, so later angle
// vectors only see points no earlier orientation could explain.
//
// Basic usage:
//
//	ds, _ := ingest.ReadFile("data.csv")
//	clusters, err := cash.Run(ctx, ds.Points, cash.Config{
//		Splits: 4,
//		Eps:    2,
//		MinPts: 3,
//	})
//	// clusters[i].Members are the point ids, ascending
//	// clusters[i].AnglesDeg is the angle vector that produced the cluster
//
// The run is deterministic: identical inputs produce an identical cluster
// sequence regardless of Config.Workers.
package cash
