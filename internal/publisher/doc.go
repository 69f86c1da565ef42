// Package publisher ties a trigger handle to the registries that route
// its name. Construction performs the linkage writes; from then on the
// publisher fires and consumers observe through whichever registry they
// read the name from.
package publisher
