// Package tester runs fixture files against a compiled grammar.Table
// and diffs the resulting parser.Tree against an expected tree: list
// the cases under a path, run each, and collect one TestResult per
// case.
package tester

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/lrtab/lrtab/grammar"
	"github.com/lrtab/lrtab/parser"
)

// TestCase is one fixture: a source text to tokenize and parse, and
// the parser.Tree it must produce.
type TestCase struct {
	Title    string
	Source   string
	Expected *parser.Tree
}

// TestCaseWithMetadata pairs a parsed TestCase with the file it came
// from, or the error encountered trying to read/parse that file.
type TestCaseWithMetadata struct {
	TestCase *TestCase
	FilePath string
	Error    error
}

// ListTestCases reads testPath, recursing into directories, and
// parses every file it finds as a fixture.
func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{{FilePath: testPath, Error: err}}
	}
	if !fi.IsDir() {
		c, err := parseTestCaseFile(testPath)
		return []*TestCaseWithMetadata{{TestCase: c, FilePath: testPath, Error: err}}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{{FilePath: testPath, Error: err}}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cases = append(cases, ListTestCases(filepath.Join(testPath, e.Name()))...)
	}
	return cases
}

func parseTestCaseFile(path string) (*TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTestCase(string(data))
}

// ParseTestCase reads the fixture format:
//
//	<title>
//	---
//	<source text to tokenize and parse>
//	---
//	<JSON-encoded expected parser.Tree>
func ParseTestCase(src string) (*TestCase, error) {
	sections := strings.Split(src, "\n---\n")
	if len(sections) != 3 {
		return nil, fmt.Errorf("fixture must have exactly two \"---\" separators, found %d", len(sections)-1)
	}

	tree := &parser.Tree{}
	if err := tree.UnmarshalJSON([]byte(strings.TrimSpace(sections[2]))); err != nil {
		return nil, fmt.Errorf("decode expected tree: %w", err)
	}

	return &TestCase{
		Title:    strings.TrimSpace(sections[0]),
		Source:   strings.Trim(sections[1], "\n"),
		Expected: tree,
	}, nil
}

// Tokenize turns a fixture's source text into the InputSymbol
// sequence parser.Parse expects. Callers supply this per grammar,
// since tokenization is grammar-specific; examples/toy provides one
// for the toy grammar.
type Tokenize func(source string) ([]parser.InputSymbol, error)

// TestResult is the outcome of running one TestCaseWithMetadata.
type TestResult struct {
	TestCasePath string
	Error        error
	Diff         string
}

func (r *TestResult) String() string {
	if r.Error != nil {
		if r.Diff == "" {
			return fmt.Sprintf("FAIL %v: %v", r.TestCasePath, r.Error)
		}
		return fmt.Sprintf("FAIL %v: %v\n%v", r.TestCasePath, r.Error, r.Diff)
	}
	return fmt.Sprintf("PASS %v", r.TestCasePath)
}

// Tester runs a batch of cases against one compiled table.
type Tester struct {
	Table    *grammar.Table
	Tokenize Tokenize
	Cases    []*TestCaseWithMetadata
}

// Run executes every case and returns one TestResult per case.
func (t *Tester) Run() []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		rs = append(rs, t.runOne(c))
	}
	return rs
}

func (t *Tester) runOne(c *TestCaseWithMetadata) *TestResult {
	if c.Error != nil {
		return &TestResult{TestCasePath: c.FilePath, Error: c.Error}
	}

	p, err := parser.New(t.Table)
	if err != nil {
		return &TestResult{TestCasePath: c.FilePath, Error: err}
	}

	input, err := t.Tokenize(c.TestCase.Source)
	if err != nil {
		return &TestResult{TestCasePath: c.FilePath, Error: fmt.Errorf("tokenize: %w", err)}
	}

	got, err := p.Parse(input)
	if err != nil {
		return &TestResult{TestCasePath: c.FilePath, Error: err}
	}

	if diff := cmp.Diff(c.TestCase.Expected, got); diff != "" {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        fmt.Errorf("parse tree did not match expected output"),
			Diff:         diff,
		}
	}
	return &TestResult{TestCasePath: c.FilePath}
}
