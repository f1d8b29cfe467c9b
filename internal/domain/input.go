package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"
)

type InputKind string

const (
	InputImage InputKind = "image"
	InputText  InputKind = "text"
)

type ScanType string

const (
	ScanCrop ScanType = "crop"
	ScanSoil ScanType = "soil"
)

// ImageDescriptor carries the uploaded photo plus what the farmer said it shows.
type ImageDescriptor struct {
	Data        []byte
	ContentType string
	ScanType    ScanType
	Metadata    map[string]string
}

func (d ImageDescriptor) clone() ImageDescriptor {
	return ImageDescriptor{
		Data:        slices.Clone(d.Data),
		ContentType: d.ContentType,
		ScanType:    d.ScanType,
		Metadata:    maps.Clone(d.Metadata),
	}
}

// Input is either an image descriptor or free text. The zero value is invalid;
// build one with NewTextInput or NewImageInput. Accessors return copies so a
// submitted input cannot be changed underneath a running classification.
type Input struct {
	id    string
	kind  InputKind
	text  string
	image ImageDescriptor
}

func NewTextInput(content string) (Input, error) {
	if strings.TrimSpace(content) == "" {
		return Input{}, fmt.Errorf("%w: text input is empty", ErrValidation)
	}
	return Input{id: uuid.NewString(), kind: InputText, text: content}, nil
}

func NewImageInput(desc ImageDescriptor) (Input, error) {
	if len(desc.Data) == 0 {
		return Input{}, fmt.Errorf("%w: image input has no data", ErrValidation)
	}
	switch desc.ScanType {
	case ScanCrop, ScanSoil:
	case "":
		desc.ScanType = ScanCrop
	default:
		return Input{}, fmt.Errorf("%w: unknown scan type %q", ErrValidation, desc.ScanType)
	}
	return Input{id: uuid.NewString(), kind: InputImage, image: desc.clone()}, nil
}

func (in Input) ID() string      { return in.id }
func (in Input) Kind() InputKind { return in.kind }
func (in Input) Text() string    { return in.text }

func (in Input) Image() ImageDescriptor { return in.image.clone() }

func (in Input) IsZero() bool { return in.id == "" }
