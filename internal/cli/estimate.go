package cli

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"covid-estimator/internal/engine"
	"covid-estimator/internal/handler"
	"covid-estimator/internal/validation"
)

type estimateOptions struct {
	file   string
	format string
	demo   bool
}

func NewCmdEstimate() *cobra.Command {
	o := estimateOptions{format: handler.FormatJSON}

	cmd := &cobra.Command{
		Use:   "estimate [flags]",
		Short: "Estimate one report read from a file or stdin",
		Example: "  covid-estimator estimate --file report.json\n" +
			"  cat report.json | covid-estimator estimate --format xml\n" +
			"  covid-estimator estimate --demo",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.file, "file", "f", "", "path to a JSON report, stdin when empty")
	flags.StringVarP(&o.format, "format", "o", o.format, "output format: json or xml")
	flags.BoolVar(&o.demo, "demo", false, "estimate the built-in demo report")

	return cmd
}

func (o *estimateOptions) Validate() error {
	if o.format != handler.FormatJSON && o.format != handler.FormatXML {
		return fmt.Errorf("unsupported format %q", o.format)
	}
	if o.demo && o.file != "" {
		return errors.New("--demo and --file are mutually exclusive")
	}
	return nil
}

func (o *estimateOptions) Run(in io.Reader, out io.Writer) error {
	var body []byte
	var err error

	switch {
	case o.demo:
		body, err = json.Marshal(handler.DemoReport())
	case o.file != "":
		body, err = os.ReadFile(o.file)
	default:
		body, err = io.ReadAll(in)
	}
	if err != nil {
		return errors.Wrap(err, "reading report")
	}

	report, err := validation.NewValidator().DecodeReport(body)
	if err != nil {
		return err
	}

	result, err := engine.Estimate(report)
	if err != nil {
		return errors.Wrap(err, "estimating")
	}

	var encoded []byte
	if o.format == handler.FormatXML {
		encoded, err = xml.MarshalIndent(result, "", "  ")
		encoded = append([]byte(xml.Header), encoded...)
	} else {
		encoded, err = json.MarshalIndent(result, "", "  ")
	}
	if err != nil {
		return errors.Wrap(err, "encoding result")
	}

	_, err = fmt.Fprintln(out, string(encoded))
	return err
}
