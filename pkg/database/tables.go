package database

// ReferenceTables are the normalized lookup tables, one per reference kind.
var ReferenceTables = []string{
	"industries",
	"designations",
	"skills",
	"certifications",
	"locations",
}
