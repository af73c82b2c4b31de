// Package schema holds the statically declared validation schema: a
// declarative table mapping field names to rule declarations.
//
// # Overview
//
// A Definition names a record type and lists its fields in declaration
// order; each field carries an ordered list of rule declarations (kind,
// parameter bag, optional message-template override). Definitions are built
// in code with the helper constructors or loaded from a YAML document with a
// kind/apiVersion envelope:
//
//	kind: ValidationSchema
//	apiVersion: validationschema.fieldvet.io/v1
//	spec:
//	  name: SampleForm
//	  fields:
//	    - name: name
//	      rules:
//	        - kind: size
//	          params: {min: 1, max: 20}
//
// Definitions carry metadata only. They never inspect field values; the
// validator compiles them into evaluators on first use.
package schema
