// Package powergrab is a planning toolkit and the drone simulator built on it:
// an ordered priority deque, a bounded best-first search engine and an open
// tour optimizer, driving autonomous drones that collect coins and power from
// charging stations on a daily map.
//
// 🚀 What is in the box?
//
//	Generic building blocks, single-threaded and free of I/O:
//		• prioritydeque – ordered multiset with deque tie-breaking and a capacity bound
//		• search        – best-first search with dominance-aware, bounded explored set
//		• tsp           – nearest-neighbour construction refined by 3-opt
//
//	The PowerGrab game on top of them:
//		• geo        – positions, the 16 compass directions, the play area
//		• game       – stations, maps, drones and the resource-transfer rules
//		• geomap     – GeoJSON maps in, flight traces out
//		• pilot      – stateless, attraction and stateful (planning) pilots
//		• simulation – flies a pilot for a move budget and records every move
//		• config     – run settings from TOML or YAML
//
// Quick ASCII example (the stateful pilot):
//
//	  drone ──3-opt order──▶ s1 ──▶ s2 ──▶ s3
//	    │
//	    └─ best-first search over moves, keyed by position,
//	       cheapest = (targets left, coins lost, distance)
//
// The command line lives in cmd/powergrab:
//
//	powergrab run 15 09 2019 55.944425 -3.188396 5678 stateful
//	powergrab run --stats --to 20-09-2019 15 09 2019 55.944425 -3.188396 5678 attraction
//	powergrab tour powergrabmap.geojson --heuristic three-opt
package powergrab
