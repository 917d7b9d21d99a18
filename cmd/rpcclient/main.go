package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Content types by file extension, for convenience when -mime is omitted.
var mimeByExt = map[string]string{
	".webm": "audio/webm",
	".ogg":  "audio/ogg",
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".flac": "audio/flac",
}

func main() {
	audioFile := flag.String("audio", "testdata/recording.webm", "Path to the audio file to transcribe")
	serverURL := flag.String("server", "http://localhost:8080", "Gateway base URL")
	mimeType := flag.String("mime", "", "Audio MIME type (derived from extension when empty)")
	language := flag.String("language", "", "Optional language hint, e.g. en")
	method := flag.String("method", "media.transcribe", "Gateway method to call")
	flag.Parse()

	params := map[string]any{}
	if *method == "media.transcribe" {
		data, err := os.ReadFile(*audioFile)
		if err != nil {
			log.Fatalf("Failed to read audio file: %v", err)
		}

		mt := *mimeType
		if mt == "" {
			mt = mimeByExt[strings.ToLower(filepath.Ext(*audioFile))]
		}

		params["audio"] = base64.StdEncoding.EncodeToString(data)
		params["fileName"] = filepath.Base(*audioFile)
		if mt != "" {
			params["mime"] = mt
		}
		if *language != "" {
			params["language"] = *language
		}
		log.Printf("Sending %d bytes of %s audio", len(data), mt)
	}

	body, err := json.Marshal(map[string]any{
		"method": *method,
		"params": params,
	})
	if err != nil {
		log.Fatalf("Failed to encode request: %v", err)
	}

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Post(*serverURL+"/v1/rpc", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}

	log.Printf("HTTP %d", resp.StatusCode)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, out, "", "  "); err != nil {
		log.Printf("%s", out)
		return
	}
	log.Printf("%s", pretty.String())
}
