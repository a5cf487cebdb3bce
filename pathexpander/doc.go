// Package pathexpander implements the Path Expander (§4.E): it turns a
// routing.Route's node-id sequence into concrete per-leg ground-level walks
// by calling the Graph Store once per adjacent pair.
package pathexpander
