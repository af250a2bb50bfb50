// Package trdom is the representation and selection core of a genetic search
// for Total Roman Dominating Functions.
//
// A labeling f: V → {0,1,2} is a Total Roman Dominating Function when every
// vertex labeled 0 has a neighbor labeled 2 and every positively labeled
// vertex has a positively labeled neighbor. Its weight is Σ f(v).
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    thread-safe undirected simple graph over integer vertex IDs
//	builder/ deterministic fixtures: paths, cycles, stars, wheels, K_n, G(n,p)
//	genetic/ Chromosome, validity, repair, Population, k-tournament selection
//	config/  TRDOM_* environment settings turned into genetic options
//
// Quick ASCII example (C5 labeled [2 0 0 2 1], weight 5, valid):
//
//	    2(0)───0(1)
//	    │         │
//	  1(4)       0(2)
//	      ╲     ╱
//	       2(3)
//
//	go get github.com/katalvlaran/trdom
package trdom
