package main

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.edgekit.dev/fetchdriver/internal/metaerr"
)

// extractMember copies the named member of a zip archive to dst.
// The member is streamed to a temporary sibling file first and only moved
// into place after a complete copy, so a failed extraction never leaves a
// partial driver binary at dst.
func extractMember(archive []byte, member string, dst string) error {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}

	var file *zip.File
	for _, f := range reader.File {
		if f.Name == member {
			file = f
			break
		}
	}
	if file == nil {
		return metaerr.WithMetadata(ErrMemberNotFound, "member", member)
	}

	in, err := file.Open()
	if err != nil {
		return fmt.Errorf("open archive member: %w", err)
	}
	defer func() {
		_ = in.Close()
	}()

	dstDir := filepath.Dir(dst)
	dstName := filepath.Base(dst)

	// write to a new temporary dst
	dstNew := filepath.Join(dstDir, fmt.Sprintf(".%s.new", dstName))
	out, err := os.OpenFile(dstNew, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("write extracted member: %w", err)
	}

	// close out here, since windows wouldn't let us move the new file
	_ = out.Close()

	if _, err := os.Stat(dst); err == nil { // file exists
		dstOld := filepath.Join(dstDir, fmt.Sprintf(".%s.old", dstName))

		// delete existing old file (for windows' sake)
		_ = os.Remove(dstOld)

		// move existing file
		if err := os.Rename(dst, dstOld); err != nil {
			return err
		}
	}

	// move the new file
	if err := os.Rename(dstNew, dst); err != nil {
		return err
	}

	return nil
}
