// Package osmnodes imports tour stops from OpenStreetMap extracts.
//
// Only nodes are read; ways and relations are skipped. A Filter decides
// which nodes become places, by default every node carrying a name tag.
package osmnodes
