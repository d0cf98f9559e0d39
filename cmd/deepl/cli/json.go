// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

// JSONOutput is an embeddable struct that adds --json output support to
// a command's parameter struct. Embedding it provides the --json flag
// (via struct tag processing in [BindFlags]) and the [JSONOutput.EmitJSON]
// method for conditional JSON output.
//
// Usage:
//
//	type translateParams struct {
//	    cli.APIFlags
//	    cli.JSONOutput
//	    Text string `flag:"text" desc:"text to translate"`
//	}
//
//	// In Run:
//	if done, err := params.EmitJSON(session.Printer, response); done {
//	    return err
//	}
//	// ... text formatting ...
type JSONOutput struct {
	OutputJSON bool `json:"-" flag:"json" desc:"print the full response as JSON"`
}

// EmitJSON writes result as indented JSON through printer if --json is
// set. Returns (true, nil) on success, (true, err) on write failure, or
// (false, nil) when --json is not set and the caller should proceed
// with text formatting.
func (j *JSONOutput) EmitJSON(printer *Printer, result any) (bool, error) {
	if !j.OutputJSON {
		return false, nil
	}
	return true, printer.JSON(result)
}
