// Package lib provide convinience types that can be used by other
// packages in this repository. Package shall not import packages
// other than golang's standard packages.
package lib
