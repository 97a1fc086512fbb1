package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

// Pretty is implemented by results that know their human-readable form
type Pretty interface {
	Pretty() string
}

// IDLister is implemented by results that can print as bare ids in quiet mode
type IDLister interface {
	IDs() []string
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to stdout and stderr
	Out io.Writer
	Err io.Writer
}

// AddOutputFlags registers the --json and --quiet flags shared by commands
func AddOutputFlags(fs *pflag.FlagSet) {
	fs.Bool("json", false, "Output in JSON format")
	fs.Bool("quiet", false, "Minimal output (IDs only)")
}

// FormatterFromFlags builds a formatter from flags registered by AddOutputFlags
func FormatterFromFlags(fs *pflag.FlagSet, out, errOut io.Writer) (*OutputFormatter, error) {
	jsonOutput, err := fs.GetBool("json")
	if err != nil {
		return nil, err
	}
	quietMode, err := fs.GetBool("quiet")
	if err != nil {
		return nil, err
	}
	if jsonOutput && quietMode {
		return nil, &CommandError{Code: ExitUsage, Kind: "USAGE_ERROR", Err: fmt.Errorf("--json and --quiet cannot be combined")}
	}
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode, Out: out, Err: errOut}, nil
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if lister, ok := data.(IDLister); ok {
			for _, id := range lister.IDs() {
				fmt.Fprintln(f.out(), id)
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if p, ok := data.(Pretty); ok {
		_, err := fmt.Fprintln(f.out(), p.Pretty())
		return err
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
