// Package registry holds the seeders of one run: an ordered collection of
// seeder definitions plus the catalog of named kinds that plan files bind
// instances to.
//
// Registration order is significant. The resolver breaks ties between
// simultaneously-ready seeders by registration order, so iterating a
// registry always yields definitions in the order they were added.
package registry
