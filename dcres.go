/*
Package dcres simulates direct-current electrical resistivity soundings over
horizontally layered ground: a survey of four-electrode configurations is
forward-modelled to apparent resistivity by running the layered-earth
resistivity kernel through a digital Hankel filter, with Gaussian
contamination for synthetic-data studies and Latin hypercube ensembles for
parameter sweeps.

ref: Koefoed, O., 1979. Geosounding Principles 1: Resistivity Sounding Measurements. Elsevier, Amsterdam. 276pp.
*/
package dcres
