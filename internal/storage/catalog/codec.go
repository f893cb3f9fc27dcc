package catalog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/mzums/keysnap/internal/models"
)

// On-disk layout, all integers little endian:
//
//	category_count:u32 record_count:u32
//	category_count x (len:u8 name)
//	record_count   x (len:u8 shortcut len:u8 description category_index:u32)

// preallocCap bounds slice preallocation driven by untrusted header counts.
const preallocCap uint32 = 1024

type snapshot struct {
	categories []string
	records    []models.ShortcutRecord
}

func encode(w io.Writer, categories []string, records []models.ShortcutRecord) error {
	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:4], uint32(len(categories)))
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(records)))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	for _, name := range categories {
		if err := writeString(w, name); err != nil {
			return err
		}
	}

	var idx [4]byte
	for _, rec := range records {
		if err := writeString(w, rec.Shortcut); err != nil {
			return err
		}
		if err := writeString(w, rec.Description); err != nil {
			return err
		}
		binary.LittleEndian.PutUint32(idx[:], rec.CategoryIndex)
		if _, err := w.Write(idx[:]); err != nil {
			return err
		}
	}

	return nil
}

func writeString(w io.Writer, s string) error {
	if len(s) > models.MaxFieldLen {
		return fmt.Errorf("string of %d bytes exceeds %d", len(s), models.MaxFieldLen)
	}
	buf := make([]byte, 0, len(s)+1)
	buf = append(buf, byte(len(s)))
	buf = append(buf, s...)
	_, err := w.Write(buf)
	return err
}

// decode parses a whole catalog. Any framing problem is reported as
// models.ErrCorruptFile; nothing is returned on failure.
func decode(r io.Reader) (snapshot, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return snapshot{}, corrupt("header", err)
	}
	categoryCount := binary.LittleEndian.Uint32(header[0:4])
	recordCount := binary.LittleEndian.Uint32(header[4:8])

	snap := snapshot{
		categories: make([]string, 0, int(min(categoryCount, preallocCap))),
		records:    make([]models.ShortcutRecord, 0, int(min(recordCount, preallocCap))),
	}

	for i := uint32(0); i < categoryCount; i++ {
		name, err := readString(r)
		if err != nil {
			return snapshot{}, corrupt(fmt.Sprintf("category %d of %d", i+1, categoryCount), err)
		}
		snap.categories = append(snap.categories, name)
	}

	var idx [4]byte
	for i := uint32(0); i < recordCount; i++ {
		where := fmt.Sprintf("record %d of %d", i+1, recordCount)

		shortcut, err := readString(r)
		if err != nil {
			return snapshot{}, corrupt(where, err)
		}
		description, err := readString(r)
		if err != nil {
			return snapshot{}, corrupt(where, err)
		}
		if _, err := io.ReadFull(r, idx[:]); err != nil {
			return snapshot{}, corrupt(where, err)
		}
		categoryIndex := binary.LittleEndian.Uint32(idx[:])
		if categoryIndex >= categoryCount {
			return snapshot{}, fmt.Errorf("%w: %s: category index %d out of range (%d categories)",
				models.ErrCorruptFile, where, categoryIndex, categoryCount)
		}

		snap.records = append(snap.records, models.ShortcutRecord{
			Shortcut:      shortcut,
			Description:   description,
			CategoryIndex: categoryIndex,
		})
	}

	var trailing [1]byte
	if n, _ := r.Read(trailing[:]); n > 0 {
		return snapshot{}, fmt.Errorf("%w: trailing data after %d records", models.ErrCorruptFile, recordCount)
	}

	return snap, nil
}

func readString(r io.Reader) (string, error) {
	var size [1]byte
	if _, err := io.ReadFull(r, size[:]); err != nil {
		return "", err
	}
	buf := make([]byte, size[0])
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", errors.New("string is not valid utf-8")
	}
	return string(buf), nil
}

func corrupt(where string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s: file ends early", models.ErrCorruptFile, where)
	}
	return fmt.Errorf("%w: %s: %v", models.ErrCorruptFile, where, err)
}
