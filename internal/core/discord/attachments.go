package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
)

// fileOpener opens an attachment for reading.
type fileOpener func(path string) (io.ReadCloser, error)

func openOSFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

type openedFile struct {
	path string
	rc   io.ReadCloser
}

// openAll opens every path. If any open fails, the files opened so far are
// closed before returning.
func (c *Client) openAll(paths []string) ([]openedFile, error) {
	files := make([]openedFile, 0, len(paths))
	for _, path := range paths {
		rc, err := c.open(path)
		if err != nil {
			closeAll(files)
			return nil, fmt.Errorf("open attachment %q: %w", path, err)
		}
		files = append(files, openedFile{path: path, rc: rc})
	}
	return files, nil
}

func closeAll(files []openedFile) {
	for _, f := range files {
		_ = f.rc.Close()
	}
}

func (c *Client) sendMultipart(ctx context.Context, channelID string, payload createMessage, paths []string) (*SentMessage, error) {
	files, err := c.openAll(paths)
	if err != nil {
		return nil, err
	}
	defer closeAll(files)

	body, contentType, err := encodeMultipart(payload, files)
	if err != nil {
		return nil, err
	}

	responseBody, err := c.do(ctx, http.MethodPost, messagesPath(channelID), contentType, body, nil)
	if err != nil {
		return nil, err
	}
	return decodeSent(responseBody)
}

// encodeMultipart builds a multipart/form-data body with a payload_json part
// followed by files[0]..files[n-1].
func encodeMultipart(payload createMessage, files []openedFile) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("discord: encode payload_json: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="payload_json"`)
	header.Set("Content-Type", "application/json")
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("discord: create payload_json part: %w", err)
	}
	if _, err := part.Write(encoded); err != nil {
		return nil, "", fmt.Errorf("discord: write payload_json part: %w", err)
	}

	for i, f := range files {
		part, err := w.CreateFormFile(fmt.Sprintf("files[%d]", i), filepath.Base(f.path))
		if err != nil {
			return nil, "", fmt.Errorf("discord: create part for %q: %w", f.path, err)
		}
		if _, err := io.Copy(part, f.rc); err != nil {
			return nil, "", fmt.Errorf("discord: read attachment %q: %w", f.path, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("discord: finish multipart body: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
