// Package plot renders measurement-count distributions as interactive
// HTML bar charts, one bar per observed bitstring. Handy for eyeballing
// whether a run's probability mass actually concentrates on the dyadic
// phases of an order, or is drowned in noise.
package plot
