package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/danespinosa/unsublink"
	"github.com/danespinosa/unsublink/bloom"
	"golang.org/x/sync/errgroup"
)

// stdinSource names the input read from stdin.
const stdinSource = "-"

// duplicateFPRate is the Bloom filter false positive rate for --skip-duplicates.
const duplicateFPRate = 0.001

// Record is one line of extract output.
type Record struct {
	Source    string   `json:"source"`
	Digest    string   `json:"digest"`
	Link      string   `json:"link"`
	Stage     string   `json:"stage"`
	Valid     bool     `json:"valid"`
	Anchors   []string `json:"anchors"`
	Duplicate bool     `json:"duplicate,omitempty"`
}

type input struct {
	source string
	body   string
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	inputs, err := c.readInputs(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unsublink.ErrorMessage(err))
		return err
	}

	var seen *bloom.Filter
	if c.SkipDuplicates {
		seen = bloom.NewFilter(uint(max(len(inputs), 1000)), duplicateFPRate)
	}

	records := make([]Record, len(inputs))
	var pending []int
	for i, in := range inputs {
		records[i] = Record{Source: in.source, Digest: bloom.Digest(in.body), Anchors: []string{}}
		if seen != nil && seen.Seen(records[i].Digest) {
			records[i].Duplicate = true
			deps.Logger.Debug("skipping duplicate", "source", in.source, "digest", records[i].Digest)
			continue
		}
		pending = append(pending, i)
	}

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(max(c.Concurrency, 1))
	for _, i := range pending {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ctx := gctx
			if c.ModelTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(gctx, c.ModelTimeout)
				defer cancel()
			}

			result := deps.Extractor.Extract(ctx, inputs[i].body)
			if result == nil {
				return nil
			}
			records[i].Link = result.Link
			records[i].Stage = string(result.Stage)
			records[i].Valid = result.Valid
			if result.Anchors != nil {
				records[i].Anchors = result.Anchors
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// readInputs reads every file argument, or stdin when there are none.
func (c *ExtractCmd) readInputs(stdin io.Reader) ([]input, error) {
	if len(c.Files) == 0 {
		if stdin == nil {
			return nil, unsublink.Errorf(unsublink.EINVALID, "no input files and no stdin")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, unsublink.Errorf(unsublink.EINVALID, "read stdin: %v", err)
		}
		return []input{{source: stdinSource, body: string(data)}}, nil
	}

	inputs := make([]input, 0, len(c.Files))
	for _, path := range c.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, unsublink.Errorf(unsublink.ENOTFOUND, "read %s: %v", path, err)
		}
		inputs = append(inputs, input{source: path, body: string(data)})
	}
	return inputs, nil
}
