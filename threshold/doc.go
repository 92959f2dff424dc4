// Package threshold decides how many minimizer hits make a bin a match.
//
// Three kinds exist. The k-mer lemma applies when window and k-mer size are
// equal, so every k-mer is a minimizer. A percentage of the minimizers
// applies when the user fixed the threshold. Otherwise a probabilistic base
// threshold is raised by the false-positive correction for the observed
// minimizer count.
package threshold
