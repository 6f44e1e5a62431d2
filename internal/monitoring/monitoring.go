package monitoring

import (
	"context"
	"net/http"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	LayerRepository = "repositories"
	LayerService    = "services"
	LayerDelivery   = "deliveries"
	LayerUnknown    = "unknown"
)

// Monitor times one unit of work and reports it as a newrelic segment plus a
// log line when it finishes.
type Monitor struct {
	ctx         context.Context
	segmentName string
	layer       string
	start       time.Time
	segment     *newrelic.Segment
}

type initOptions struct {
	layer       string
	segmentName string
}

type InitOption func(*initOptions)

func WithLayer(layer string) InitOption {
	return func(o *initOptions) {
		o.layer = layer
	}
}

func WithSegmentName(segmentName string) InitOption {
	return func(o *initOptions) {
		o.segmentName = segmentName
	}
}

// New must be called directly by the function being monitored, the segment
// name and layer are taken from its caller frame.
func New(ctx context.Context, opts ...InitOption) *Monitor {
	o := &initOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.segmentName == "" || o.layer == "" {
		name, layer := callerInfo(2)
		if o.segmentName == "" {
			o.segmentName = name
		}
		if o.layer == "" {
			o.layer = layer
		}
	}

	segment := newrelic.FromContext(ctx).StartSegment(o.segmentName)
	if segment != nil {
		segment.AddAttribute("layer", o.layer)
	}

	return &Monitor{
		ctx:         ctx,
		segmentName: o.segmentName,
		layer:       o.layer,
		start:       time.Now(),
		segment:     segment,
	}
}

func (m *Monitor) SegmentName() string { return m.segmentName }

func (m *Monitor) Layer() string { return m.layer }

func callerInfo(skip int) (segmentName, layer string) {
	pc, file, _, ok := runtime.Caller(skip)
	if !ok {
		return LayerUnknown, LayerUnknown
	}

	segmentName = LayerUnknown
	if fn := runtime.FuncForPC(pc); fn != nil {
		segmentName = segmentNameOf(fn.Name())
	}

	return segmentName, layerFromFile(file)
}

// reFuncName captures package, optional receiver and method of a runtime
// function name such as "a/b/services.(*paymentSubmission).Submit".
var reFuncName = regexp.MustCompile(`(?:[^/]+/)*([^./]+)\.(?:\(?\*?([^.)]+)\)?\.)?(.+)$`)

func segmentNameOf(fullFuncName string) string {
	m := reFuncName.FindStringSubmatch(fullFuncName)
	if len(m) < 4 {
		return fullFuncName
	}

	parts := make([]string, 0, 3)
	for _, p := range m[1:4] {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ".")
}

func layerFromFile(file string) string {
	for _, layer := range []string{LayerRepository, LayerService, LayerDelivery} {
		if strings.Contains(file, "/"+layer+"/") {
			return layer
		}
	}
	return LayerUnknown
}

// NewMiddlewareRoundTripper reports outbound calls as external segments of
// the transaction carried by the request context.
func NewMiddlewareRoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return newrelic.NewRoundTripper(next)
}
