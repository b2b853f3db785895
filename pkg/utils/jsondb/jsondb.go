// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package jsondb provides a trivial "database": a Go object saved to
// disk as JSON.
package jsondb

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Asutorufa/seqlist/pkg/log"
	"github.com/Asutorufa/seqlist/pkg/utils/atomicfile"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// DB is a database backed by a JSON file.
type DB[T proto.Message] struct {
	// Data is the contents of the database.
	Data T

	path   string
	exists bool
}

// Open opens the database at path. Fields missing from the file, or the whole
// file when it does not exist, are filled from defaultValue.
func Open[T interface {
	proto.Message
	*A
}, A any](path string, defaultValue T) *DB[T] {
	val := T(new(A))

	bs, err := os.ReadFile(path)
	exists := !errors.Is(err, fs.ErrNotExist)
	switch {
	case err == nil:
		err = protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(bs, val)
		if err != nil {
			log.Warn("proto json unmarshal failed", "path", path, "err", err)
		}
	case !exists:
		log.Debug("jsonDB file not exist, use default", "path", path)
	default:
		log.Warn("open jsonDB file failed", "path", path, "err", err)
	}

	MergeDefault(val.ProtoReflect(), defaultValue.ProtoReflect())

	return &DB[T]{
		Data:   val,
		path:   path,
		exists: exists,
	}
}

// MergeDefault copies every field set in def but unset in src. Messages and
// map entries present on both sides are merged recursively; a oneof already
// holding another member in src is left alone.
func MergeDefault(src, def protoreflect.Message) {
	if !src.IsValid() {
		return
	}

	for fd, v := range def.Range {
		if od := fd.ContainingOneof(); od != nil {
			if set := src.WhichOneof(od); set != nil && set.Number() != fd.Number() {
				continue
			}
		}

		if !src.Has(fd) {
			src.Set(fd, v)
			continue
		}

		switch {
		case fd.IsMap():
			mergeMap(src.Mutable(fd).Map(), v.Map(), fd.MapValue())
		case fd.Message() != nil && !fd.IsList():
			MergeDefault(src.Mutable(fd).Message(), v.Message())
		}
	}
}

func mergeMap(src, def protoreflect.Map, vd protoreflect.FieldDescriptor) {
	for k, v := range def.Range {
		if !src.Has(k) {
			src.Set(k, v)
		} else if vd.Message() != nil {
			MergeDefault(src.Mutable(k).Message(), v.Message())
		}
	}
}

func (db *DB[T]) Dir() string  { return filepath.Dir(db.path) }
func (db *DB[T]) Path() string { return db.path }

// Exists reports whether the file was present on Open.
func (db *DB[T]) Exists() bool { return db.exists }

// Save writes db.Data back to disk.
func (db *DB[T]) Save() error {
	bs, err := protojson.MarshalOptions{Multiline: true, Indent: "\t", EmitUnpopulated: true}.Marshal(db.Data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(db.Dir(), 0o755); err != nil {
		return err
	}

	if err := atomicfile.WriteFile(db.path, bs, 0o600); err != nil {
		return err
	}

	db.exists = true
	return nil
}
