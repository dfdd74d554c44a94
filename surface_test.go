package shapes

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// mockDevice implements gpucontext.Device for testing.
type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

type mockQueue struct{}

type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct {
	device  gpucontext.Device
	queue   gpucontext.Queue
	adapter gpucontext.Adapter
	format  gputypes.TextureFormat
}

func newMockProvider() *mockProvider {
	return &mockProvider{
		device:  &mockDevice{},
		queue:   &mockQueue{},
		adapter: &mockAdapter{},
		format:  gputypes.TextureFormatBGRA8Unorm,
	}
}

func (m *mockProvider) Device() gpucontext.Device             { return m.device }
func (m *mockProvider) Queue() gpucontext.Queue               { return m.queue }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return m.adapter }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

func TestNewImageSurface(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       error
	}{
		{"valid", 64, 32, nil},
		{"zero width", 0, 32, ErrInvalidDimensions},
		{"negative height", 64, -1, ErrInvalidDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewImageSurface(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewImageSurface() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			defer s.Close()
			if s.Width() != tt.width || s.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", s.Width(), s.Height(), tt.width, tt.height)
			}
			if len(s.Pixels()) != tt.width*tt.height*4 {
				t.Errorf("len(Pixels()) = %d, want %d", len(s.Pixels()), tt.width*tt.height*4)
			}
		})
	}
}

func TestImageSurfaceResetRestoresIdentity(t *testing.T) {
	s, err := NewImageSurface(16, 16)
	if err != nil {
		t.Fatalf("NewImageSurface() error = %v", err)
	}
	defer s.Close()

	s.Scale(3, 3)
	s.Save()
	s.Translate(10, 20)
	s.Save()
	s.Concat(gg.Rotate(1))

	s.Reset()
	if !s.Matrix().IsIdentity() {
		t.Errorf("Matrix() after Reset = %+v, want identity", s.Matrix())
	}

	// Saved states are gone: Restore must not bring back a transform.
	s.Restore()
	if !s.Matrix().IsIdentity() {
		t.Errorf("Matrix() after Reset+Restore = %+v, want identity", s.Matrix())
	}
}

func TestImageSurfaceSaveRestore(t *testing.T) {
	s, err := NewImageSurface(16, 16)
	if err != nil {
		t.Fatalf("NewImageSurface() error = %v", err)
	}
	defer s.Close()

	s.Translate(5, 0)
	s.Save()
	s.Scale(2, 2)
	if s.Matrix() != gg.Translate(5, 0).Multiply(gg.Scale(2, 2)) {
		t.Errorf("Matrix() = %+v", s.Matrix())
	}
	s.Restore()
	if s.Matrix() != gg.Translate(5, 0) {
		t.Errorf("Matrix() after Restore = %+v, want translate(5,0)", s.Matrix())
	}
}

func TestImageSurfaceResetClearsPixels(t *testing.T) {
	s, err := NewImageSurface(8, 8)
	if err != nil {
		t.Fatalf("NewImageSurface() error = %v", err)
	}
	defer s.Close()

	if err := s.FillRect(Rect{X2: 8, Y2: 8}, Fill{R: 255, A: 255}); err != nil {
		t.Fatalf("FillRect() error = %v", err)
	}
	s.Reset()
	for i, b := range s.Pixels() {
		if b != 0 {
			t.Fatalf("Pixels()[%d] = %d after Reset, want 0", i, b)
		}
	}
}

func TestImageSurfaceClosed(t *testing.T) {
	s, err := NewImageSurface(8, 8)
	if err != nil {
		t.Fatalf("NewImageSurface() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
	if err := s.FillRect(Rect{X2: 1, Y2: 1}, Fill{A: 255}); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("FillRect() on closed surface error = %v, want %v", err, ErrSurfaceClosed)
	}
	if err := s.Flush(); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("Flush() on closed surface error = %v, want %v", err, ErrSurfaceClosed)
	}
}

func TestNewCanvasSurface(t *testing.T) {
	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
		width    int
		height   int
		wantErr  error
	}{
		{"valid", newMockProvider(), 100, 50, nil},
		{"nil provider", nil, 100, 50, ErrNilProvider},
		{"zero height", newMockProvider(), 100, 0, ErrInvalidDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewCanvasSurface(tt.provider, tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewCanvasSurface() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			defer s.Close()
			if s.Width() != tt.width || s.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", s.Width(), s.Height(), tt.width, tt.height)
			}
		})
	}
}

func TestCanvasSurfaceFlush(t *testing.T) {
	s, err := NewCanvasSurface(newMockProvider(), 32, 32)
	if err != nil {
		t.Fatalf("NewCanvasSurface() error = %v", err)
	}
	defer s.Close()

	if s.Texture() != nil {
		t.Error("Texture() before Flush should be nil")
	}
	if err := s.FillRect(Rect{X2: 16, Y2: 16}, Fill{G: 255, A: 255}); err != nil {
		t.Fatalf("FillRect() error = %v", err)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if s.Texture() == nil {
		t.Error("Texture() after Flush = nil")
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Flush(); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("Flush() after Close error = %v, want %v", err, ErrSurfaceClosed)
	}
}
