// Package cache is a content-hash-keyed store of parsed Programs, backed by
// modernc.org/sqlite exactly the way funxy's own SQL builtins open a
// database (database/sql + the side-effect "modernc.org/sqlite" import,
// never cgo). Each row is tagged with the parse-session id that produced it
// (google/uuid, as funxy's lib/uuid builtins already use); the id is only
// stored, and neither Get nor Stats reads it back.
package cache

import (
	"bytes"
	"crypto/sha256"
	"database/sql"
	"encoding/gob"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"

	"github.com/funvibe/ecmaparse/internal/ast"
)

func init() {
	gob.Register(&ast.EmptyStatement{})
	gob.Register(&ast.BlockStatement{})
	gob.Register(&ast.ExpressionStatement{})
	gob.Register(&ast.IfStatement{})
	gob.Register(&ast.LabeledStatement{})
	gob.Register(&ast.BreakStatement{})
	gob.Register(&ast.ContinueStatement{})
	gob.Register(&ast.WithStatement{})
	gob.Register(&ast.SwitchStatement{})
	gob.Register(&ast.SwitchCase{})
	gob.Register(&ast.ReturnStatement{})
	gob.Register(&ast.ThrowStatement{})
	gob.Register(&ast.TryStatement{})
	gob.Register(&ast.CatchClause{})
	gob.Register(&ast.WhileStatement{})
	gob.Register(&ast.DoWhileStatement{})
	gob.Register(&ast.ForStatement{})
	gob.Register(&ast.ForInStatement{})
	gob.Register(&ast.ForOfStatement{})
	gob.Register(&ast.DebuggerStatement{})
	gob.Register(&ast.VariableDeclaration{})
	gob.Register(&ast.VariableDeclarator{})
	gob.Register(&ast.FunctionDeclaration{})
	gob.Register(&ast.ClassDeclaration{})
	gob.Register(&ast.Identifier{})
	gob.Register(&ast.PrivateIdentifier{})
	gob.Register(&ast.Literal{})
	gob.Register(&ast.TemplateLiteral{})
	gob.Register(&ast.TemplateElement{})
	gob.Register(&ast.TaggedTemplateExpression{})
	gob.Register(&ast.ArrayExpression{})
	gob.Register(&ast.ObjectExpression{})
	gob.Register(&ast.Property{})
	gob.Register(&ast.FunctionExpression{})
	gob.Register(&ast.ArrowFunctionExpression{})
	gob.Register(&ast.ClassExpression{})
	gob.Register(&ast.ClassBody{})
	gob.Register(&ast.MethodDefinition{})
	gob.Register(&ast.PropertyDefinition{})
	gob.Register(&ast.StaticBlock{})
	gob.Register(&ast.MetaProperty{})
	gob.Register(&ast.SequenceExpression{})
	gob.Register(&ast.UnaryExpression{})
	gob.Register(&ast.UpdateExpression{})
	gob.Register(&ast.BinaryExpression{})
	gob.Register(&ast.LogicalExpression{})
	gob.Register(&ast.AssignmentExpression{})
	gob.Register(&ast.ConditionalExpression{})
	gob.Register(&ast.CallExpression{})
	gob.Register(&ast.NewExpression{})
	gob.Register(&ast.MemberExpression{})
	gob.Register(&ast.ChainExpression{})
	gob.Register(&ast.ImportExpression{})
	gob.Register(&ast.SpreadElement{})
	gob.Register(&ast.YieldExpression{})
	gob.Register(&ast.AwaitExpression{})
	gob.Register(&ast.ThisExpression{})
	gob.Register(&ast.Super{})
	gob.Register(&ast.ParenthesizedExpression{})
	gob.Register(&ast.ObjectPattern{})
	gob.Register(&ast.ArrayPattern{})
	gob.Register(&ast.AssignmentPattern{})
	gob.Register(&ast.RestElement{})
	gob.Register(&ast.ImportDeclaration{})
	gob.Register(&ast.ImportSpecifier{})
	gob.Register(&ast.ImportDefaultSpecifier{})
	gob.Register(&ast.ImportNamespaceSpecifier{})
	gob.Register(&ast.ExportNamedDeclaration{})
	gob.Register(&ast.ExportDefaultDeclaration{})
	gob.Register(&ast.ExportAllDeclaration{})
	gob.Register(&ast.ExportSpecifier{})
}

// Store is a sqlite-backed content-addressed cache of parsed Programs.
type Store struct {
	db        *sql.DB
	sessionID uuid.UUID
}

// Open creates (if needed) and opens the sqlite database at path, tagging
// every row this Store writes with a fresh session id.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, sessionID: uuid.New()}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS parse_cache (
	hash       TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	data       BLOB NOT NULL,
	size       INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);
`

// Hash returns the content key a Store uses for source text.
func Hash(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Get looks up a previously cached parse by source hash. The returned bool
// is false on a cache miss, not an error.
func (s *Store) Get(hash string) (*ast.Program, bool, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM parse_cache WHERE hash = ?`, hash).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var prog ast.Program
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&prog); err != nil {
		return nil, false, err
	}
	return &prog, true, nil
}

// Put stores prog under hash, tagged with this Store's session id.
func (s *Store) Put(hash string, prog *ast.Program) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(prog); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO parse_cache (hash, session_id, data, size, created_at) VALUES (?, ?, ?, ?, ?)`,
		hash, s.sessionID.String(), buf.Bytes(), buf.Len(), time.Now().Unix(),
	)
	return err
}

// Stats summarizes the cache's current contents for a CLI --cache summary
// line (entry count and total byte size, formatted with go-humanize by the
// caller).
type Stats struct {
	Entries   int
	TotalSize int64
}

func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(size), 0) FROM parse_cache`).Scan(&st.Entries, &st.TotalSize)
	return st, err
}
