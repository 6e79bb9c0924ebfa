// Package airports manages the airport dataset used to pick tour stops by
// code: it pulls the paginated airportgap.com catalogue, stores it as a JSON
// file, and selects airports by id.
//
// The file format is the API's own record list
// ([{"id":"JFK","type":"airport","attributes":{...}}, ...]), so a saved
// dataset can be replaced by a raw dump of the API's "data" arrays.
package airports
