package exiterr

import "errors"

// Report is the normalized, fixed-shape record for an error-reporting event.
// Optional fields carry omitempty tags so that absent values disappear from
// the encoded output instead of appearing as null.
//
// Context and CommandName are always populated (falling back to the command
// name supplied by the caller), and Status and ExitCode always mirror the
// resolved code.
type Report struct {
	Code        int      `json:"code" yaml:"code"`
	Actions     []string `json:"actions,omitempty" yaml:"actions,omitempty"`
	Context     string   `json:"context" yaml:"context"`
	CommandName string   `json:"commandName" yaml:"commandName"`
	Data        any      `json:"data,omitempty" yaml:"data,omitempty"`
	Result      any      `json:"result,omitempty" yaml:"result,omitempty"`
	Message     string   `json:"message" yaml:"message"`
	Name        string   `json:"name" yaml:"name"`
	Status      int      `json:"status" yaml:"status"`
	Stack       string   `json:"stack,omitempty" yaml:"stack,omitempty"`
	ExitCode    int      `json:"exitCode" yaml:"exitCode"`
}

// NewReport builds a Report for err with the resolved exit code and the name
// of the command that was running. Structured fields (actions, context, data,
// result) are taken from the nearest *Error in the chain when one is present;
// message, name, and stack come from the error's own surface. A nil err
// produces a report with just the code, command fields, and default name.
func NewReport(code int, err error, commandName string) Report {
	report := Report{
		Code:        code,
		Context:     commandName,
		CommandName: commandName,
		Name:        "Error",
		Status:      code,
		ExitCode:    code,
	}
	if err == nil {
		return report
	}

	report.Message = err.Error()

	var n Namer
	if errors.As(err, &n) && n.ErrorName() != "" {
		report.Name = n.ErrorName()
	}
	var st StackTracer
	if errors.As(err, &st) {
		report.Stack = st.StackTrace()
	}

	var perr *Error
	if errors.As(err, &perr) {
		report.Actions = perr.Actions
		report.Data = perr.Data
		report.Result = perr.Result
		// The error's own context wins, then its command name, then the
		// caller-supplied command name already in place.
		if perr.Context != "" {
			report.Context = perr.Context
		} else if perr.CommandName != "" {
			report.Context = perr.CommandName
		}
		if perr.CommandName != "" {
			report.CommandName = perr.CommandName
		}
	}
	return report
}
