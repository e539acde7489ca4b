package loader

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Common errors returned by the parser
var (
	errInvalidGLTFVersion = errors.New("invalid glTF version: must be 2.0")
	errInvalidGLBMagic    = errors.New("invalid GLB magic number")
	errInvalidGLBVersion  = errors.New("invalid GLB version: must be 2")
	errMissingJSONChunk   = errors.New("GLB file missing JSON chunk")
	errGLBTooSmall        = errors.New("GLB file too small")
	errAccessorOutOfRange = errors.New("accessor index out of range")
)

// gltfParserImpl is the implementation of the gltfParser interface.
type gltfParserImpl struct {
	document *gltfDocument
	binSize  int
}

// gltfParser loads the JSON document of a glTF or GLB file. Binary payloads are skipped:
// everything the scene needs is recoverable from the document and accessor bounds.
type gltfParser interface {
	// Parse loads and parses a glTF/GLB file from the given path.
	// Automatically detects .gltf (JSON) vs .glb (binary) format.
	//
	// Parameters:
	//   - path: path to the glTF or GLB file
	//
	// Returns:
	//   - error: error if parsing fails
	Parse(path string) error

	// Document returns the parsed glTF document, or nil before a successful parse.
	Document() *gltfDocument

	// BinarySize returns the length of the GLB BIN chunk, or 0 when there is none.
	BinarySize() int

	// Accessor returns the accessor at index.
	//
	// Parameters:
	//   - index: the accessor index
	//
	// Returns:
	//   - *gltfAccessor: the accessor
	//   - error: errAccessorOutOfRange if the index is invalid
	Accessor(index int) (*gltfAccessor, error)
}

var _ gltfParser = &gltfParserImpl{}

// newGLTFParser creates a new glTF parser instance.
//
// Returns:
//   - gltfParser: a new parser instance
func newGLTFParser() gltfParser {
	return &gltfParserImpl{}
}

func (p *gltfParserImpl) Document() *gltfDocument {
	return p.document
}

func (p *gltfParserImpl) BinarySize() int {
	return p.binSize
}

func (p *gltfParserImpl) Accessor(index int) (*gltfAccessor, error) {
	if p.document == nil || index < 0 || index >= len(p.document.Accessors) {
		return nil, fmt.Errorf("%w: %d", errAccessorOutOfRange, index)
	}
	return &p.document.Accessors[index], nil
}

func (p *gltfParserImpl) Parse(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".glb" || (len(data) >= 4 && binary.LittleEndian.Uint32(data[:4]) == gltfGLBMagic) {
		return p.parseGLB(data)
	}

	return p.parseGLTF(data)
}

// parseGLTF parses a glTF JSON file.
func (p *gltfParserImpl) parseGLTF(data []byte) error {
	var doc gltfDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse glTF JSON: %w", err)
	}

	if !strings.HasPrefix(doc.Asset.Version, "2.") {
		return errInvalidGLTFVersion
	}

	p.document = &doc
	return nil
}

// parseGLB parses a GLB binary file.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#glb-file-format-specification
func (p *gltfParserImpl) parseGLB(data []byte) error {
	if len(data) < 12 {
		return errGLBTooSmall
	}

	r := bytes.NewReader(data)

	var header gltfGLBHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to read GLB header: %w", err)
	}

	if header.Magic != gltfGLBMagic {
		return errInvalidGLBMagic
	}
	if header.Version != gltfGLBVersion {
		return errInvalidGLBVersion
	}

	var jsonData []byte
	for {
		var chunkHeader gltfGLBChunkHeader
		if err := binary.Read(r, binary.LittleEndian, &chunkHeader); err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("failed to read chunk header: %w", err)
		}

		switch chunkHeader.ChunkType {
		case gltfGLBChunkJSON:
			jsonData = make([]byte, chunkHeader.ChunkLength)
			if _, err := io.ReadFull(r, jsonData); err != nil {
				return fmt.Errorf("failed to read chunk data: %w", err)
			}
		default:
			if chunkHeader.ChunkType == gltfGLBChunkBIN {
				p.binSize = int(chunkHeader.ChunkLength)
			}
			if _, err := r.Seek(int64(chunkHeader.ChunkLength), io.SeekCurrent); err != nil {
				return fmt.Errorf("failed to skip chunk: %w", err)
			}
		}
	}

	if jsonData == nil {
		return errMissingJSONChunk
	}

	return p.parseGLTF(jsonData)
}
