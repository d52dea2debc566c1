// Package layout reads the YAML ward layouts used to seed the land table.
//
//	districts:
//	  - territory: 339
//	    wards: [1, 2, 3]
//	    type: 2
//	    sizes: [mansion, house, house, cottage]
//
// Every listed ward receives a full set of land.WardSize plots.
package layout
