// Command tomlcore-lsp is a minimal language server for TOML documents:
// it parses on open and change, and answers hover with the dotted key
// path and kind of the value at the cursor. Parse errors are kept per
// document but not published as diagnostics, and save notifications are
// not handled. Grounded on the teacher's cmd/tony-lsp, which wired the
// same go.lsp.dev/jsonrpc2 + go.lsp.dev/protocol server skeleton over
// ir.Node instead of ir.Value.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"

	"github.com/tomlcore/tomlcore/ir"
	"github.com/tomlcore/tomlcore/parse"
)

type document struct {
	text string
	root *ir.Table
	err  error
}

type server struct {
	conn jsonrpc2.Conn
	docs map[protocol.DocumentURI]*document
}

func main() {
	stream := jsonrpc2.NewStream(stdrwc{})
	conn := jsonrpc2.NewConn(stream)
	s := &server{conn: conn, docs: map[protocol.DocumentURI]*document{}}
	conn.Go(context.Background(), s.handle)
	<-conn.Done()
}

// stdrwc adapts stdin/stdout into an io.ReadWriteCloser for jsonrpc2,
// the way the teacher's tony-lsp main.go wires its own transport.
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdrwc) Close() error                { return nil }

func (s *server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case protocol.MethodInitialize:
		return reply(ctx, &protocol.InitializeResult{
			Capabilities: protocol.ServerCapabilities{
				TextDocumentSync: protocol.TextDocumentSyncKindFull,
				HoverProvider:    true,
			},
		}, nil)
	case protocol.MethodTextDocumentDidOpen:
		var params protocol.DidOpenTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		s.update(params.TextDocument.URI, params.TextDocument.Text)
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentDidChange:
		var params protocol.DidChangeTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		if len(params.ContentChanges) > 0 {
			s.update(params.TextDocument.URI, params.ContentChanges[len(params.ContentChanges)-1].Text)
		}
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentHover:
		var params protocol.HoverParams
		if err := unmarshalParams(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, s.hover(params), nil)
	case protocol.MethodShutdown:
		return reply(ctx, nil, nil)
	case protocol.MethodExit:
		os.Exit(0)
		return nil
	default:
		return reply(ctx, nil, nil)
	}
}

func (s *server) update(uri protocol.DocumentURI, text string) {
	root, err := parse.Parse([]byte(text))
	s.docs[uri] = &document{text: text, root: root, err: err}
}

// hover converts the cursor to a byte offset and walks the document's
// parsed tree (from its last open/change) for the value whose source
// position, recorded during that parse, is nearest at or before the
// offset. It reports that value's key path and kind; nothing is
// re-parsed per hover.
func (s *server) hover(params protocol.HoverParams) *protocol.Hover {
	doc, ok := s.docs[params.TextDocument.URI]
	if !ok || doc.root == nil {
		return nil
	}
	offset := offsetAt(doc.text, params.Position)
	path, v := resolveAtOffset(doc.root, doc.text, offset)
	if v == nil {
		return nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.PlainText,
			Value: fmt.Sprintf("%s: %s", path, v.Kind),
		},
	}
}

func offsetAt(text string, pos protocol.Position) int {
	line, col := 0, 0
	for i, c := range []byte(text) {
		if uint32(line) == pos.Line && uint32(col) == pos.Character {
			return i
		}
		if c == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return len(text)
}

// resolveAtOffset finds the innermost value whose source position is at
// or before offset, by a simple nearest-preceding-position scan across
// the table tree.
func resolveAtOffset(t *ir.Table, text string, offset int) (string, *ir.Value) {
	var bestPath string
	var best *ir.Value
	var walk func(tbl *ir.Table, prefix string)
	walk = func(tbl *ir.Table, prefix string) {
		for _, k := range tbl.Keys() {
			v, _ := tbl.Get(k)
			path := k
			if prefix != "" {
				path = prefix + "." + k
			}
			if v.Pos.Offset <= offset && (best == nil || v.Pos.Offset > best.Pos.Offset) {
				best, bestPath = v, path
			}
			if v.Kind == ir.TableKind {
				walk(v.Tbl, path)
			}
		}
	}
	walk(t, "")
	return bestPath, best
}

func unmarshalParams(req jsonrpc2.Request, v any) error {
	return json.Unmarshal(req.Params(), v)
}
