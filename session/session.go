// Package session wires the tagging steps together: load the vocabulary,
// optionally edit it, pick a dataset, prepare the output file and tag rows.
package session

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/paul-bokelman/csv-tags/dataset"
	"github.com/paul-bokelman/csv-tags/output"
	"github.com/paul-bokelman/csv-tags/tagger"
	"github.com/paul-bokelman/csv-tags/tui"
	"github.com/paul-bokelman/csv-tags/utils"
	"github.com/paul-bokelman/csv-tags/vocab"
	"github.com/sirupsen/logrus"
)

type Options struct {
	TagsFile string
	DataDir  string
	OutDir   string
	// File skips the file prompt. It is a name inside DataDir.
	File string
	// SkipEdit skips the "Modify tags?" question.
	SkipEdit bool
}

type Result struct {
	NothingToDo bool
	OutputPath  string
	Resumed     bool
	StartLine   int
	Tagged      int
	Tags        []string
}

func Run(opts Options, prompter tui.Prompter, src dataset.TextSource) (*Result, error) {
	store := vocab.NewStore(opts.TagsFile)
	tags, err := store.Load()
	if err != nil {
		return nil, err
	}
	logrus.Infof("Local tags: %s", strings.Join(tags, ", "))

	if !opts.SkipEdit {
		tags, err = vocab.NewEditor(store, prompter).Run(tags)
		if err != nil {
			return nil, err
		}
	}
	res := &Result{Tags: tags}

	selector := dataset.NewSelector(opts.DataDir, src, prompter)
	file, err := chooseFile(selector, opts.File)
	if errors.Is(err, dataset.ErrNoInput) {
		logrus.Infof("No files found in %s, exiting...", opts.DataDir)
		res.NothingToDo = true
		return res, nil
	}
	if err != nil {
		return nil, err
	}

	columns, err := selector.Columns(file)
	if err != nil {
		return nil, err
	}

	out, err := output.Prepare(opts.OutDir, file, columns, prompter, src)
	if err != nil {
		return nil, err
	}
	res.OutputPath = out.Path
	res.Resumed = out.Resumed
	res.StartLine = out.StartLine

	idColumn, err := selector.ChooseIdentifier(columns)
	if err != nil {
		return res, err
	}

	res.Tagged, err = tagger.New(prompter, tags, idColumn, out).Run(filepath.Join(opts.DataDir, file), out.StartLine)
	if err != nil {
		return res, err
	}

	logrus.WithField("rows", res.Tagged).Infof("Done! File saved to %s", out.Path)
	return res, nil
}

func chooseFile(selector *dataset.Selector, file string) (string, error) {
	if file == "" {
		return selector.ChooseFile()
	}
	if err := utils.ValidateCSVFile(filepath.Join(selector.Dir, file)); err != nil {
		return "", err
	}
	return file, nil
}
