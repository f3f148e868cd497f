package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/danmuck/bitsctl/internal/batch"
	"github.com/danmuck/bitsctl/internal/config"
	"github.com/danmuck/bitsctl/internal/protocol"
	"github.com/danmuck/bitsctl/internal/protocol/packet"
	"gopkg.in/yaml.v3"
)

type entryView struct {
	Line   int          `json:"line" yaml:"line"`
	Metric string       `json:"metric" yaml:"metric"`
	Value  *int64       `json:"value,omitempty" yaml:"value,omitempty"`
	Error  string       `json:"error,omitempty" yaml:"error,omitempty"`
	Code   string       `json:"code,omitempty" yaml:"code,omitempty"`
	Tree   *packet.Node `json:"tree,omitempty" yaml:"tree,omitempty"`
}

func writeReport(w io.Writer, report batch.Report, cfg config.Config) error {
	switch cfg.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views(report, cfg))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views(report, cfg)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, report, cfg)
	}
}

func views(report batch.Report, cfg config.Config) []entryView {
	out := make([]entryView, 0, len(report.Entries))
	for _, e := range report.Entries {
		v := entryView{Line: e.Line.Number, Metric: string(cfg.Metric)}
		if e.Err != nil {
			v.Error = e.Err.Error()
			v.Code = protocol.ErrorCode(e.Err)
		} else {
			value := e.Result.Value
			v.Value = &value
			if cfg.Tree {
				node := packet.ToNode(e.Result.Tree)
				v.Tree = &node
			}
		}
		out = append(out, v)
	}
	return out
}

// writeText prints bare values; failed lines are reported on the error path.
func writeText(w io.Writer, report batch.Report, cfg config.Config) error {
	for _, e := range report.Entries {
		if e.Err != nil {
			continue
		}
		if cfg.Tree {
			if err := packet.WriteText(w, e.Result.Tree); err != nil {
				return err
			}
		}
		var err error
		if cfg.All {
			_, err = fmt.Fprintf(w, "%d\t%d\n", e.Line.Number, e.Result.Value)
		} else {
			_, err = fmt.Fprintf(w, "%d\n", e.Result.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
