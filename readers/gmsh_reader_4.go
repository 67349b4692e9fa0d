package readers

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/notargets/gomsh/mesh"
)

// ReadGmsh4 reads a Gmsh MSH file, format version 4.x ASCII. Warnings are
// non-fatal advisories accumulated during the parse; on a fatal error no
// mesh is returned.
func ReadGmsh4(filename string) (*mesh.Mesh, []Warning, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	return ParseGmsh4(file)
}

// ParseGmsh4 decodes a Gmsh v4 ASCII stream. The stream must contain
// $MeshFormat first, then $Nodes, then $Elements; unrelated sections in
// between are skipped.
func ParseGmsh4(r io.Reader) (*mesh.Mesh, []Warning, error) {
	tr := newTokenReader(r)

	if _, err := readMeshFormat4(tr); err != nil {
		return nil, nil, err
	}

	nodes, nodeWarn, err := readNodes4(tr)
	if err != nil {
		return nil, nil, err
	}

	cells, elemWarn, err := readElements4(tr)
	if err != nil {
		return nil, nil, err
	}

	m, err := mesh.Build(nodes, cells)
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	if nodeWarn != nil {
		warnings = append(warnings, *nodeWarn)
	}
	if elemWarn != nil {
		warnings = append(warnings, *elemWarn)
	}
	return m, warnings, nil
}

// CanReadGmsh reports whether a file has a valid $MeshFormat header. Any
// header-valid file is accepted at probe stage; real validation happens in
// the full parse.
func CanReadGmsh(filename string) bool {
	file, err := os.Open(filename)
	if err != nil {
		return false
	}
	defer file.Close()

	_, err = readMeshFormat4(newTokenReader(file))
	return err == nil
}

// meshFormat is the decoded $MeshFormat triple. It is validated and then
// discarded; nothing downstream depends on it.
type meshFormat struct {
	Version  float64
	FileType int // 0 for ASCII, 1 for binary
	DataSize int // byte width of tags in binary files
}

// readMeshFormat4 parses and validates the $MeshFormat section.
func readMeshFormat4(tr *tokenReader) (meshFormat, error) {
	var mf meshFormat

	tok, err := tr.Token()
	if err != nil || tok != "$MeshFormat" {
		return mf, &FormatError{Kind: MissingSection, Line: tr.LineNumber(),
			Msg: "expected $MeshFormat in first line", Err: err}
	}

	if mf.Version, err = tr.Float(); err != nil {
		return mf, &FormatError{Kind: MissingSection, Line: tr.LineNumber(),
			Msg: "malformed $MeshFormat header", Err: err}
	}
	if mf.FileType, err = tr.Int(); err != nil {
		return mf, &FormatError{Kind: MissingSection, Line: tr.LineNumber(),
			Msg: "malformed $MeshFormat header", Err: err}
	}
	if mf.DataSize, err = tr.Int(); err != nil {
		return mf, &FormatError{Kind: MissingSection, Line: tr.LineNumber(),
			Msg: "malformed $MeshFormat header", Err: err}
	}

	if mf.Version < 4.0 {
		return mf, &FormatError{Kind: UnsupportedVersion, Line: tr.LineNumber(),
			Msg: "MSH file format version 4.0 and up only"}
	}
	if mf.FileType != 0 {
		return mf, &FormatError{Kind: UnsupportedEncoding, Line: tr.LineNumber(),
			Msg: "ASCII formatted files only"}
	}

	tok, err = tr.Token()
	if err != nil || tok != "$EndMeshFormat" {
		return mf, &FormatError{Kind: MissingSection, Line: tr.LineNumber(),
			Msg: "expected $EndMeshFormat", Err: err}
	}

	return mf, nil
}

// readEntityBlocks iterates the entity-block structure shared by $Nodes
// and $Elements: each block opens with four integers (dimension, entity
// tag, a section-specific field, record count) and is decoded by the
// supplied function.
func readEntityBlocks(tr *tokenReader, numBlocks int, decode func(dim, tag, info, count int) error) error {
	for i := 0; i < numBlocks; i++ {
		dim, err := tr.Int()
		if err != nil {
			return err
		}
		tag, err := tr.Int()
		if err != nil {
			return err
		}
		info, err := tr.Int()
		if err != nil {
			return err
		}
		count, err := tr.Int()
		if err != nil {
			return err
		}
		if err := decode(dim, tag, info, count); err != nil {
			return err
		}
	}
	return nil
}

// sectionError wraps a raw tokenizer/parse error into a section-specific
// format error. Errors that are already FormatErrors pass through.
func sectionError(kind FormatErrorKind, tr *tokenReader, err error) error {
	if fe, ok := err.(*FormatError); ok {
		return fe
	}
	return &FormatError{Kind: kind, Line: tr.LineNumber(), Err: err}
}

// readNodes4 decodes the $Nodes section into raw nodes. All tags in a
// block precede all coordinate tuples; parametric coordinates beyond
// x,y,z are read and discarded.
func readNodes4(tr *tokenReader) ([]mesh.Node, *Warning, error) {
	if err := tr.SkipToMarker("$Nodes"); err != nil {
		return nil, nil, &FormatError{Kind: MissingSection, Msg: "$Nodes", Err: err}
	}

	// Header: numEntityBlocks numNodes minNodeTag maxNodeTag
	var hdr [4]int
	for i := range hdr {
		v, err := tr.Int()
		if err != nil {
			return nil, nil, sectionError(MalformedNodeSection, tr, err)
		}
		hdr[i] = v
	}
	numBlocks, numNodes, minTag, maxTag := hdr[0], hdr[1], hdr[2], hdr[3]
	if numBlocks < 0 || numNodes < 0 {
		return nil, nil, &FormatError{Kind: MalformedNodeSection, Line: tr.LineNumber(),
			Msg: "negative count in $Nodes header"}
	}

	// Header counts are a capacity hint only; observed counts are
	// authoritative.
	nodes := make([]mesh.Node, 0, numNodes)
	minObserved, maxObserved := math.MaxInt, 0

	err := readEntityBlocks(tr, numBlocks, func(dim, tag, parametric, count int) error {
		if count < 0 {
			return &FormatError{Kind: MalformedNodeSection, Line: tr.LineNumber(),
				Msg: "negative node count in entity block"}
		}

		// Tag-only pass first; the format puts all tags in a block
		// before all coordinate tuples.
		tags := make([]int, count)
		for j := 0; j < count; j++ {
			t, err := tr.Int()
			if err != nil {
				return err
			}
			if t < 1 {
				return &FormatError{Kind: MalformedNodeSection, Line: tr.LineNumber(),
					Msg: fmt.Sprintf("node tag %d is not positive", t)}
			}
			tags[j] = t
		}

		numCoords := 3
		if parametric != 0 {
			numCoords += dim
		}

		for j := 0; j < count; j++ {
			var xyz [3]float64
			for k := 0; k < 3; k++ {
				v, err := tr.Float()
				if err != nil {
					return err
				}
				xyz[k] = v
			}
			// Parametric coordinates carry no geometric meaning
			// for the output mesh.
			for k := 3; k < numCoords; k++ {
				if _, err := tr.Float(); err != nil {
					return err
				}
			}

			if tags[j] < minObserved {
				minObserved = tags[j]
			}
			if tags[j] > maxObserved {
				maxObserved = tags[j]
			}
			nodes = append(nodes, mesh.Node{Tag: tags[j], X: xyz[0], Y: xyz[1], Z: xyz[2]})
		}
		return nil
	})
	if err != nil {
		return nil, nil, sectionError(MalformedNodeSection, tr, err)
	}

	var warn *Warning
	if len(nodes) > 0 && (minObserved != minTag || maxObserved != maxTag) {
		warn = &Warning{
			Kind:     NodeTagRangeMismatch,
			Declared: TagRange{Min: minTag, Max: maxTag},
			Observed: TagRange{Min: minObserved, Max: maxObserved},
		}
	}
	return nodes, warn, nil
}

// readElements4 decodes the $Elements section into raw cells. Vertex tags
// convert to zero-based point-table offsets via tag-1. An unknown element
// type code aborts the whole parse: the record width of subsequent
// elements cannot be known, so the stream position is unrecoverable.
func readElements4(tr *tokenReader) ([]mesh.Cell, *Warning, error) {
	if err := tr.SkipToMarker("$Elements"); err != nil {
		return nil, nil, &FormatError{Kind: MissingSection, Msg: "$Elements", Err: err}
	}

	// Header: numEntityBlocks numElements minElementTag maxElementTag
	var hdr [4]int
	for i := range hdr {
		v, err := tr.Int()
		if err != nil {
			return nil, nil, sectionError(MalformedElementSection, tr, err)
		}
		hdr[i] = v
	}
	numBlocks, numElements, minTag, maxTag := hdr[0], hdr[1], hdr[2], hdr[3]
	if numBlocks < 0 || numElements < 0 {
		return nil, nil, &FormatError{Kind: MalformedElementSection, Line: tr.LineNumber(),
			Msg: "negative count in $Elements header"}
	}

	cells := make([]mesh.Cell, 0, numElements)
	minObserved, maxObserved := math.MaxInt, 0

	err := readEntityBlocks(tr, numBlocks, func(dim, tag, elementType, count int) error {
		if count < 0 {
			return &FormatError{Kind: MalformedElementSection, Line: tr.LineNumber(),
				Msg: "negative element count in entity block"}
		}

		spec, err := elementSpecForType(elementType)
		if err != nil {
			if fe, ok := err.(*FormatError); ok {
				fe.Line = tr.LineNumber()
			}
			return err
		}

		for j := 0; j < count; j++ {
			elemTag, err := tr.Int()
			if err != nil {
				return err
			}

			vertices := make([]int, spec.NumNodes)
			for k := 0; k < spec.NumNodes; k++ {
				vtag, err := tr.Int()
				if err != nil {
					return err
				}
				vertices[k] = vtag - 1
			}

			if elemTag < minObserved {
				minObserved = elemTag
			}
			if elemTag > maxObserved {
				maxObserved = elemTag
			}
			cells = append(cells, mesh.Cell{Tag: elemTag, Type: spec.Type, Vertices: vertices})
		}
		return nil
	})
	if err != nil {
		return nil, nil, sectionError(MalformedElementSection, tr, err)
	}

	var warn *Warning
	if len(cells) > 0 && (minObserved != minTag || maxObserved != maxTag) {
		warn = &Warning{
			Kind:     ElementTagRangeMismatch,
			Declared: TagRange{Min: minTag, Max: maxTag},
			Observed: TagRange{Min: minObserved, Max: maxObserved},
		}
	}
	return cells, warn, nil
}
