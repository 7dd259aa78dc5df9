// Package nbformat maps a decoded notebook document onto the ir node
// tree. The mapping is one pass and one-to-one: source arrays are
// flattened to single strings, outputs dispatch on their output_type
// tag, and MIME bundle payloads pass through un-normalized (joining
// text fragments is the selector's job, not the adapter's).
package nbformat

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gridbook/nbfmt/debug"
	"github.com/gridbook/nbfmt/ir"
)

// multiline is a notebook text field whose wire form is either a
// single string or a sequence of fragments joined with no separator.
type multiline string

func (m *multiline) UnmarshalJSON(d []byte) error {
	if len(d) > 0 && d[0] == '"' {
		var s string
		if err := json.Unmarshal(d, &s); err != nil {
			return err
		}
		*m = multiline(s)
		return nil
	}
	var frags []string
	if err := json.Unmarshal(d, &frags); err != nil {
		return err
	}
	joined := ""
	for _, f := range frags {
		joined += f
	}
	*m = multiline(joined)
	return nil
}

type nbDoc struct {
	NBFormat      int            `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
	Metadata      map[string]any `json:"metadata"`
	Cells         []nbCell       `json:"cells"`
	Worksheets    []nbWorksheet  `json:"worksheets"`
}

type nbWorksheet struct {
	Cells []nbCell `json:"cells"`
}

type nbCell struct {
	CellType       string         `json:"cell_type"`
	Source         multiline      `json:"source"`
	Input          multiline      `json:"input"`
	Metadata       map[string]any `json:"metadata"`
	Outputs        []nbOutput     `json:"outputs"`
	ExecutionCount *int           `json:"execution_count"`
	PromptNumber   *int           `json:"prompt_number"`
}

type nbOutput struct {
	OutputType     string         `json:"output_type"`
	Name           string         `json:"name"`
	Stream         string         `json:"stream"`
	Text           multiline      `json:"text"`
	Data           *ir.MimeBundle `json:"data"`
	Metadata       map[string]any `json:"metadata"`
	ExecutionCount *int           `json:"execution_count"`
	PromptNumber   *int           `json:"prompt_number"`
	EName          string         `json:"ename"`
	EValue         string         `json:"evalue"`
	Traceback      []string       `json:"traceback"`
}

// Parse materializes a notebook document as an ir tree. The document
// must be nbformat v4; the v3 spellings of cell source and execution
// counters are accepted as fallbacks.
func Parse(d []byte, opts ...ParseOption) (*ir.Root, error) {
	o := parseOpts{}
	for _, opt := range opts {
		opt(&o)
	}
	doc := &nbDoc{}
	if err := json.Unmarshal(d, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromDoc(doc, o)
}

func ParseFrom(r io.Reader, opts ...ParseOption) (*ir.Root, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return Parse(d, opts...)
}

func fromDoc(doc *nbDoc, o parseOpts) (*ir.Root, error) {
	cells := doc.Cells
	if cells == nil {
		for _, ws := range doc.Worksheets {
			cells = append(cells, ws.Cells...)
		}
	}
	if doc.NBFormat == 0 && cells == nil {
		return nil, fmt.Errorf("%w: no nbformat version and no cells", ErrBadFormat)
	}
	root := &ir.Root{
		Base:          ir.Base{Data: doc.Metadata},
		NBFormat:      doc.NBFormat,
		NBFormatMinor: doc.NBFormatMinor,
	}
	for i := range cells {
		cell, err := fromCell(&cells[i], o)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		root.Kids = append(root.Kids, cell)
	}
	if debug.Parse() {
		debug.Logf("parsed notebook v%d.%d, %d cells\n",
			doc.NBFormat, doc.NBFormatMinor, len(root.Kids))
	}
	return root, nil
}

func fromCell(c *nbCell, o parseOpts) (ir.Node, error) {
	source := string(c.Source)
	if source == "" {
		source = string(c.Input)
	}
	switch c.CellType {
	case "code":
		count := c.ExecutionCount
		if count == nil {
			count = c.PromptNumber
		}
		cell := &ir.CodeCell{
			Base:           ir.Base{Data: c.Metadata},
			ExecutionCount: count,
			Kids:           []ir.Node{&ir.Source{Text: source}},
		}
		for i := range c.Outputs {
			out, err := fromOutput(&c.Outputs[i], o)
			if err != nil {
				return nil, fmt.Errorf("output %d: %w", i, err)
			}
			cell.Kids = append(cell.Kids, out)
		}
		return cell, nil
	case "markdown":
		return &ir.MarkdownCell{
			Base: ir.Base{Data: c.Metadata},
			Kids: []ir.Node{&ir.Markdown{Text: source}},
		}, nil
	case "raw":
		return &ir.RawCell{
			Base: ir.Base{Data: c.Metadata},
			Kids: []ir.Node{&ir.RawText{Text: source}},
		}, nil
	default:
		if o.lenient {
			return &ir.RawCell{
				Base: ir.Base{Data: c.Metadata},
				Kids: []ir.Node{&ir.RawText{Text: source}},
			}, nil
		}
		return nil, fmt.Errorf("%w: unknown cell type %q", ErrParse, c.CellType)
	}
}

func fromOutput(out *nbOutput, o parseOpts) (ir.Node, error) {
	switch out.OutputType {
	case "stream":
		name := out.Name
		if name == "" {
			name = out.Stream
		}
		return &ir.Stream{
			Base: ir.Base{Data: out.Metadata},
			Name: name,
			Text: string(out.Text),
		}, nil
	case "display_data":
		return &ir.DisplayData{
			Bundle:   bundleOrEmpty(out.Data),
			Metadata: out.Metadata,
		}, nil
	case "execute_result", "pyout":
		count := out.ExecutionCount
		if count == nil {
			count = out.PromptNumber
		}
		return &ir.ExecuteResult{
			Bundle:         bundleOrEmpty(out.Data),
			Metadata:       out.Metadata,
			ExecutionCount: count,
		}, nil
	case "error", "pyerr":
		return &ir.Error{
			Name:      out.EName,
			Message:   out.EValue,
			Traceback: out.Traceback,
		}, nil
	default:
		if o.lenient {
			return &ir.Opaque{Kind: out.OutputType}, nil
		}
		return nil, fmt.Errorf("%w: unknown output type %q", ErrParse, out.OutputType)
	}
}

func bundleOrEmpty(b *ir.MimeBundle) *ir.MimeBundle {
	if b == nil {
		return &ir.MimeBundle{}
	}
	return b
}
