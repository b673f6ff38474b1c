// Package messageformat compiles ICU MessageFormat patterns into message functions that can be
// formatted in-process or rendered into self-contained JavaScript.
package messageformat

import (
	"errors"
	"github.com/lus/messageformat.go/compiler"
	"github.com/lus/messageformat.go/formatters"
	"github.com/lus/messageformat.go/plurals"
	"io"
	"log/slog"
	"strings"
)

// ErrNotFunction is returned when formatting an artifact that is a group of messages
var ErrNotFunction = compiler.ErrNotFunction

// MessageFormat holds the locales, plural rules, formatters and options compilations share.
// It is immutable once created and safe for concurrent use.
type MessageFormat struct {
	compiler *compiler.Compiler
	registry *plurals.Registry
	locale   string
	logger   *slog.Logger
}

// New creates a new MessageFormat.
// Without WithLocales or WithConfig the only locale is "en".
func New(opts ...Option) (*MessageFormat, error) {
	options := &settings{
		pluralRules: make(map[string]plurals.Rule),
		formatters:  formatters.Builtins(),
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(options)
	}

	// The first requested locale is the default one
	codes := options.locales
	if len(codes) == 0 {
		codes = []string{"en"}
		if options.fallback != "" {
			codes = []string{options.fallback}
		}
	}

	registry, err := plurals.NewRegistry(codes, options.pluralRules, options.fallback)
	if err != nil {
		return nil, err
	}
	defaultLocale := codes[0]

	options.logger.Debug("created message format",
		slog.Any("locales", registry.Codes()),
		slog.String("default", defaultLocale),
		slog.Bool("bidi", options.biDiSupport),
		slog.Bool("strict_number_sign", options.strictNumberSign),
	)

	return &MessageFormat{
		compiler: compiler.New(compiler.Environment{
			Registry:         registry,
			Formatters:       options.formatters,
			DefaultLocale:    defaultLocale,
			BiDiSupport:      options.biDiSupport,
			StrictNumberSign: options.strictNumberSign,
			MaxDepth:         options.maxDepth,
			Logger:           options.logger,
		}),
		registry: registry,
		locale:   defaultLocale,
		logger:   options.logger,
	}, nil
}

// Locales returns the sorted codes of all locales with a bound plural rule
func (mf *MessageFormat) Locales() []string {
	return mf.registry.Codes()
}

// DefaultLocale returns the locale used for messages whose path names no locale
func (mf *MessageFormat) DefaultLocale() string {
	return mf.locale
}

// Compile compiles a single pattern (string), a message tree (map[string]any or map[string]string)
// or a *Resource into an Artifact.
// If a locale is passed, it is used for every message; otherwise the locale of a message is taken from
// the first key on its path naming a known locale, falling back to the default locale.
// Compilation is all-or-nothing: the first error aborts it.
func (mf *MessageFormat) Compile(messages any, locale ...string) (*Artifact, error) {
	if resource, ok := messages.(*Resource); ok {
		messages = resource.Tree()
	}
	lc := ""
	if len(locale) > 0 {
		lc = locale[0]
	}

	result, err := mf.compiler.Compile(messages, lc)
	if err != nil {
		mf.logger.Debug("compilation failed", slog.String("error", err.Error()))
		return nil, err
	}
	return &Artifact{node: result.Root, result: result}, nil
}

// Artifact is a compiled pattern or a compiled group of messages
type Artifact struct {
	node   *compiler.Node
	result *compiler.Result
}

// Format formats a compiled pattern using the given parameters.
// Formatting a group of messages fails with ErrNotFunction.
func (artifact *Artifact) Format(params map[string]any) (string, error) {
	return artifact.node.Format(params)
}

// FormatMessage formats the message at the given dot-separated path of a compiled group of messages
func (artifact *Artifact) FormatMessage(path string, params map[string]any) (string, error) {
	message, ok := artifact.Lookup(strings.Split(path, ".")...)
	if !ok {
		return "", &NotFoundError{Path: path}
	}
	return message.Format(params)
}

// Lookup returns the artifact at the given path of a compiled group of messages
func (artifact *Artifact) Lookup(path ...string) (*Artifact, bool) {
	node := artifact.node
	for _, key := range path {
		if node.Kind != compiler.KindGroup {
			return nil, false
		}
		child, ok := node.Child(key)
		if !ok {
			return nil, false
		}
		node = child
	}
	return &Artifact{node: node, result: artifact.result}, true
}

// Keys returns the sorted keys of a group of messages; it is empty for a single message
func (artifact *Artifact) Keys() []string {
	if artifact.node.Kind != compiler.KindGroup {
		return nil
	}
	return artifact.node.Keys()
}

// IsGroup checks if the artifact is a group of messages rather than a single message
func (artifact *Artifact) IsGroup() bool {
	return artifact.node.Kind == compiler.KindGroup
}

// Locale returns the locale a single message was compiled for
func (artifact *Artifact) Locale() string {
	return artifact.node.Locale
}

// Dependencies returns the runtime support the whole compilation references
func (artifact *Artifact) Dependencies() *compiler.Deps {
	return artifact.result.Deps
}

// Render writes the self-contained JavaScript form of the whole compilation, wrapped by the packaging.
// Looked up artifacts render the whole compilation they belong to.
func (artifact *Artifact) Render(w io.Writer, pkg Packaging) error {
	if pkg == nil {
		return errors.New("no packaging given")
	}
	var expression strings.Builder
	if err := artifact.result.Render(&expression); err != nil {
		return err
	}
	return pkg(w, expression.String())
}

// String returns the self-contained JavaScript form of the compilation, wrapped by the packaging
func (artifact *Artifact) String(pkg Packaging) (string, error) {
	var builder strings.Builder
	if err := artifact.Render(&builder, pkg); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// NotFoundError is raised if FormatMessage is called with a path that names no message
type NotFoundError struct {
	Path string
}

// Error turns the error into a string
func (err *NotFoundError) Error() string {
	return "message '" + err.Path + "' does not exist"
}
