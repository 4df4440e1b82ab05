// Package schema provides the YAML definition of dimensions, units and
// operation-graph edges, together with its loader and literal parsers.
//
// A schema file is the single source of truth for a generated package of
// dimension types. Nothing here is validated beyond syntax; cross-reference
// checks live in the plan package.
//
// # Schema Overview
//
//	version: "1"
//	package: units
//	dimensions:
//	  - name: Length
//	    doc: Represents a distance.
//	    canonical: Meters
//	    signature: {length: 1}
//	    units:
//	      - name: Meters
//	        ratio: 1 per canonical
//	      - name: Feet
//	        ratio: per 0.3048 canonical
//	      - name: Hands
//	        of: Inches
//	        factor: 4
//	    operations:
//	      - Self / Time => LinearVelocity in MetersPerSecond
//	  - name: Temperature
//	    canonical: Kelvin
//	    units:
//	      - name: Kelvin
//	        ratio: 1 per canonical
//	      - name: Celsius
//	        affine: {offset: 273.15, scale: 1}
//	units:
//	  - name: HalfInches
//	    dimension: Length
//	    of: Inches
//	    factor: 0.5
//	operations:
//	  - Time * DataRate => Information in Bytes
//	imports:
//	  - path: quantity-generator/units
//	    schema: ../../units/dimensions.yaml
//
// # Ratios
//
// A linear unit declares exactly one of:
//   - "R per canonical": R of this unit make one canonical unit,
//     so canonical = v / R.
//   - "per L canonical": one of this unit is L canonical units,
//     so canonical = v * L.
//   - of/factor: one of this unit is factor of another unit.
//
// Numbers are decimal Go literals (underscores allowed) or a fraction a/b.
// They are kept as Go constant expressions so generated code stays exact.
//
// # Affine units
//
// An affine unit maps as canonical = (v + offset) * scale and back as
// v = canonical / scale - offset. Scale defaults to 1.
package schema
