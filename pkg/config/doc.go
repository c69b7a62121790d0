// Package config reads field options from JSON or YAML documents.
//
// A document maps field names to their settings:
//
//	fields:
//	  quantity:
//	    minValue: 1
//	    maxValue: 99
//	    required: true
//	  weight:
//	    allowFloats: true
//	    decimalSeparator: ","
//	    unit: kg
//	    repeatDelay: 150ms
//
// Keys that are absent keep the widget defaults. Unknown keys are rejected.
package config
