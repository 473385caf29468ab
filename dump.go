// FILE: lixenwraith/registry/dump.go
package registry

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// provenance records one backend that changed a domain's merged tree.
type provenance struct {
	Backend string
	Values  Tree
}

// dumpSink appends resolution traces under a directory:
//
//	<dir>/<trace file>          JSON lines, one per backend change
//	<dir>/app/storage/session.yaml  YAML stream per domain app.storage.session
//
// Each domain file gets one document per contributing backend followed by a
// final "resolved" document holding the merged tree.
type dumpSink struct {
	dir       string
	traceFile string
	mu        sync.Mutex
}

// newDumpSink removes output of a previous run. Removal failures are logged.
func newDumpSink(dir, traceFile string, logger *zerolog.Logger) *dumpSink {
	if err := os.RemoveAll(dir); err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("failed to clean runtime dump directory")
	}
	return &dumpSink{dir: dir, traceFile: traceFile}
}

// write appends the trace and the domain dump.
func (d *dumpSink) write(domain string, records []provenance, final Tree) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("failed to create dump directory '%s': %w", d.dir, err)
	}
	if err := d.writeTrace(domain, records); err != nil {
		return err
	}
	return d.writeDomain(domain, records, final)
}

func (d *dumpSink) writeTrace(domain string, records []provenance) error {
	path := filepath.Join(d.dir, d.traceFile)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open trace file '%s': %w", path, err)
	}
	defer file.Close()

	trace := zerolog.New(file).With().Timestamp().Str("domain", domain).Logger()
	for _, record := range records {
		trace.Info().
			Str("backend", record.Backend).
			Strs("changed", sortedPaths(record.Values)).
			Msg("backend changed values")
	}
	return nil
}

func (d *dumpSink) writeDomain(domain string, records []provenance, final Tree) error {
	path := d.domainPath(domain)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create dump directory for '%s': %w", domain, err)
	}

	var buf bytes.Buffer
	for _, record := range records {
		if err := appendDocument(&buf, "backend: "+record.Backend, record.Values); err != nil {
			return err
		}
	}
	if err := appendDocument(&buf, "resolved: "+domain, final); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open dump file '%s': %w", path, err)
	}
	defer file.Close()

	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write dump file '%s': %w", path, err)
	}
	return nil
}

// domainPath mirrors the domain's namespace segments as directories; the last
// segment names the file.
func (d *dumpSink) domainPath(domain string) string {
	segments := strings.Split(domain, ".")
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, d.dir)
	for _, segment := range segments {
		if segment == "" || segment == "." || segment == ".." || strings.ContainsAny(segment, `/\`) {
			segment = "_"
		}
		parts = append(parts, segment)
	}
	parts[len(parts)-1] += ".yaml"
	return filepath.Join(parts...)
}

// appendDocument writes a comment line and one YAML document.
func appendDocument(buf *bytes.Buffer, comment string, values Tree) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal dump document: %w", err)
	}
	buf.WriteString("# " + comment + "\n---\n")
	buf.Write(data)
	return nil
}
