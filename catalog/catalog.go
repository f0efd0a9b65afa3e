package catalog

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/jmgilman/go/errdomain"
	"github.com/jmgilman/go/errors"
	"gopkg.in/yaml.v3"
)

// Catalog is an error category defined in YAML. It implements
// errdomain.Category.
type Catalog struct {
	domain   string
	tag      errdomain.Tag
	name     string
	messages map[int32]string
	source   string
}

// document is the YAML shape of one catalog.
type document struct {
	Domain   string           `yaml:"domain"`
	Tag      string           `yaml:"tag"`
	Name     string           `yaml:"name"`
	Messages map[int32]string `yaml:"messages"`
}

// Parse decodes every catalog document in data.
//
// Each document needs a name and at least one of domain (the identifier the
// tag is derived from) and tag (8 hex digits). When both are set they must
// agree. Unknown keys are rejected.
//
// Returns CodeInvalidInput if the YAML is malformed or a document is invalid.
func Parse(data []byte) ([]*Catalog, errors.PlatformError) {
	return parse(data, "")
}

func parse(data []byte, source string) ([]*Catalog, errors.PlatformError) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cats []*Catalog
	for index := 0; ; index++ {
		var doc document
		err := dec.Decode(&doc)
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapDecodeError(err, "failed to decode catalog",
				makeContext("source", source, "document", index))
		}

		c, perr := newCatalog(doc, source, index)
		if perr != nil {
			return nil, perr
		}
		cats = append(cats, c)
	}

	if len(cats) == 0 {
		return nil, invalidCatalog("catalog contains no documents", makeContext("source", source))
	}
	return cats, nil
}

func newCatalog(doc document, source string, index int) (*Catalog, errors.PlatformError) {
	ctx := makeContext("source", source, "document", index)

	name := strings.TrimSpace(doc.Name)
	if name == "" {
		return nil, invalidCatalog("catalog name is required", ctx)
	}
	ctx["name"] = name

	var tag errdomain.Tag
	switch {
	case doc.Tag != "":
		if len(doc.Tag) != 8 {
			return nil, invalidCatalog(fmt.Sprintf("catalog tag %q must be 8 hex digits", doc.Tag), ctx)
		}
		v, err := strconv.ParseUint(doc.Tag, 16, 32)
		if err != nil {
			return nil, invalidCatalog(fmt.Sprintf("catalog tag %q must be 8 hex digits", doc.Tag), ctx)
		}
		tag = errdomain.Tag(v)
		if doc.Domain != "" && errdomain.TagOf(doc.Domain) != tag {
			ctx["domain"] = doc.Domain
			return nil, invalidCatalog(
				fmt.Sprintf("catalog tag %s does not match domain tag %s", tag.Hex(), errdomain.TagOf(doc.Domain).Hex()),
				ctx,
			)
		}
	case doc.Domain != "":
		tag = errdomain.TagOf(doc.Domain)
	default:
		return nil, invalidCatalog("catalog requires a domain or a tag", ctx)
	}

	if tag.Reserved() {
		ctx["tag"] = tag.Hex()
		return nil, invalidCatalog("catalog uses a reserved tag", ctx)
	}

	return &Catalog{
		domain:   doc.Domain,
		tag:      tag,
		name:     name,
		messages: maps.Clone(doc.Messages),
		source:   source,
	}, nil
}

// Name returns the category name.
func (c *Catalog) Name() string {
	return c.name
}

// Message returns the text for code, or errdomain.FormatCode(code) when the
// catalog does not list it.
func (c *Catalog) Message(code int32) string {
	if msg, ok := c.messages[code]; ok {
		return msg
	}
	return errdomain.FormatCode(code)
}

// Tag returns the domain tag the catalog describes.
func (c *Catalog) Tag() errdomain.Tag {
	return c.tag
}

// Domain returns the domain identifier, or "" if the catalog only gave a tag.
func (c *Catalog) Domain() string {
	return c.domain
}

// Source returns the path the catalog was loaded from, or "" for Parse.
func (c *Catalog) Source() string {
	return c.source
}

// Codes returns the codes the catalog has messages for, in ascending order.
func (c *Catalog) Codes() []int32 {
	return slices.Sorted(maps.Keys(c.messages))
}

// RegisterAll registers every catalog in r.
//
// Catalogs whose tag already has a category are skipped; the first category
// stays in place. Returns CodeConflict listing the skipped tags if there were
// any. The remaining catalogs are registered regardless.
func RegisterAll(r *errdomain.Registry, cats ...*Catalog) errors.PlatformError {
	var conflicts []string
	for _, c := range cats {
		if !r.Register(c.tag, c) {
			conflicts = append(conflicts, c.tag.Hex())
		}
	}
	if len(conflicts) == 0 {
		return nil
	}
	return errors.WithContext(
		errors.Newf(errors.CodeConflict, "%d catalog(s) already registered: %s",
			len(conflicts), strings.Join(conflicts, ", ")),
		"tags", conflicts,
	)
}
