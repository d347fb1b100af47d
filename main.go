package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"embed"
	"flag"
	"fmt"
	"html/template"
	"math/big"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gobuffalo/envy"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/subhrm/shaders-playground/client/scene"
	"github.com/subhrm/shaders-playground/static"
)

var (
	//go:embed templates/*
	templatesFS embed.FS
	indexTmpl   = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

	port      = flag.Int("port", envInt("PORT", 80), "http port to listen on")
	useTLS    = flag.Bool("tls", false, "enable HTTPS with a self-signed certificate")
	basePath  = flag.String("base_path", envy.Get("BASE_PATH", ""), "base path to serve on, e.g. '/foo/'")
	clientDir = flag.String("client_dir", envy.Get("CLIENT_DIR", "client/dist"), "directory holding client.wasm and wasm_exec.js")
	verbose   = flag.Bool("v", false, "enable debug logging")
)

func envInt(key string, fallback int) int {
	v := envy.Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.WithField("key", key).Warnf("ignoring non-numeric value %q", v)
		return fallback
	}
	return n
}

type server struct {
	basePath  string
	clientDir string
}

type sceneLink struct {
	scene.Metadata
	Path string
}

type indexData struct {
	Title    string
	BasePath string
	Selected string
	Scenes   []sceneLink
}

func (s server) index(w http.ResponseWriter, r *http.Request) {
	selected := scene.DefaultID
	title := "Shaders Playground"
	if r.URL.Path != s.basePath {
		id, ok := scene.IDFromPath(s.basePath, r.URL.Path)
		if !ok {
			http.NotFound(w, r)
			return
		}
		meta, err := scene.Lookup(id)
		if err != nil {
			log.WithError(err).Debug("unknown scene requested")
			http.NotFound(w, r)
			return
		}
		selected = meta.ID
		title = meta.Name + " - " + title
	}

	data := indexData{
		Title:    title,
		BasePath: s.basePath,
		Selected: selected,
	}
	for _, m := range scene.All() {
		data.Scenes = append(data.Scenes, sceneLink{Metadata: m, Path: scene.Path(s.basePath, m.ID)})
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		log.WithError(err).Error("rendering index")
	}
}

// makeGzipHandler returns a HTTP HanderFunc which serves the pre-compressed
// ".gz" sibling of a file from dir when the client accepts gzip and it exists.
func makeGzipHandler(dir string, h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			h.ServeHTTP(w, r)
			return
		}
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(r.URL.Path)+".gz")); err != nil {
			h.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Set("Content-Type", "application/wasm")
		w.Header().Add("Vary", "Accept-Encoding")
		r.URL.Path += ".gz"
		r.URL.RawPath = ""
		h.ServeHTTP(w, r)
	}
}

func logRequest(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{
			ResponseWriter: w,
			Status:         200,
		}
		handler.ServeHTTP(sr, r)
		log.WithFields(log.Fields{
			"remote":   r.RemoteAddr,
			"method":   r.Method,
			"status":   sr.Status,
			"url":      r.URL.String(),
			"duration": time.Since(start),
		}).Info("request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.Status = status
	r.ResponseWriter.WriteHeader(status)
}

func canonicalizeBasePath(s string) string {
	bp := s
	if !strings.HasSuffix(bp, "/") {
		bp = bp + "/"
	}
	if !strings.HasPrefix(bp, "/") {
		bp = "/" + bp
	}
	return bp
}

func (s server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc(s.basePath, s.index)

	staticHandler := http.FileServer(http.FS(static.FS))
	mux.Handle(s.basePath+"static/", http.StripPrefix(s.basePath+"static/", staticHandler))

	clientHandler := http.FileServer(http.Dir(s.clientDir))
	mux.Handle(s.basePath+"client/", http.StripPrefix(s.basePath+"client/", clientHandler))
	mux.Handle(s.basePath+"client/client.wasm", http.StripPrefix(s.basePath+"client", makeGzipHandler(s.clientDir, clientHandler)))
	return mux
}

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	srv := server{
		basePath:  canonicalizeBasePath(*basePath),
		clientDir: *clientDir,
	}
	if _, err := os.Stat(filepath.Join(srv.clientDir, "client.wasm")); err != nil {
		log.WithField("client_dir", srv.clientDir).Warn("client.wasm not found, the page will not start")
	}

	addr := fmt.Sprintf(":%d", *port)
	handler := logRequest(srv.routes())

	if *useTLS {
		tlsCert, err := generateSelfSignedCert()
		if err != nil {
			log.Fatalf("Failed to generate self-signed certificate: %v", err)
		}
		srv := &http.Server{
			Addr:    addr,
			Handler: handler,
			TLSConfig: &tls.Config{
				Certificates: []tls.Certificate{tlsCert},
			},
		}
		log.Infof("Listening on https://0.0.0.0%s", addr)
		if err := srv.ListenAndServeTLS("", ""); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	} else {
		log.Infof("Listening on http://0.0.0.0%s", addr)
		if err := http.ListenAndServe(addr, handler); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}
}

// generateSelfSignedCert creates an in-memory self-signed TLS certificate.
func generateSelfSignedCert() (tls.Certificate, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return tls.Certificate{}, errors.Wrap(err, "generating key")
	}

	serialNumber, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return tls.Certificate{}, errors.Wrap(err, "generating serial number")
	}

	tmpl := x509.Certificate{
		SerialNumber: serialNumber,
		Subject:      pkix.Name{Organization: []string{"shaders-playground dev"}},
		NotBefore:    time.Now(),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses:  []net.IP{net.IPv4(0, 0, 0, 0), net.IPv6loopback},
	}

	certDER, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &key.PublicKey, key)
	if err != nil {
		return tls.Certificate{}, errors.Wrap(err, "creating certificate")
	}

	return tls.Certificate{
		Certificate: [][]byte{certDER},
		PrivateKey:  key,
	}, nil
}
