package media

import (
	"bytes"
	"testing"
)

// buildClip surrounds an embedded JPEG frame with container-like noise.
func buildClip(frame []byte) []byte {
	var clip bytes.Buffer
	clip.Write([]byte("RIFFxxxxAVI LIST"))
	clip.Write(make([]byte, 512))
	clip.Write(frame)
	clip.Write(make([]byte, 256))
	return clip.Bytes()
}

func TestRepresentativeFrame(t *testing.T) {
	frame := fakeJPEG(4096)
	clip := buildClip(frame)

	got, ok := RepresentativeFrame(clip)
	if !ok {
		t.Fatal("RepresentativeFrame found no frame, want one")
	}
	if !bytes.Equal(got, frame) {
		t.Errorf("extracted frame differs from embedded frame: got %d bytes, want %d", len(got), len(frame))
	}
}

func TestRepresentativeFrameNoMarkers(t *testing.T) {
	if _, ok := RepresentativeFrame(make([]byte, 8192)); ok {
		t.Error("RepresentativeFrame found a frame in zero bytes, want none")
	}
}

func TestRepresentativeFrameSkipsTinyMatches(t *testing.T) {
	// A marker pair spanning fewer bytes than a plausible frame is noise.
	tiny := append([]byte{0xFF, 0xD8, 0xFF, 0x00}, 0xFF, 0xD9)
	clip := append(tiny, make([]byte, 4096)...)

	if _, ok := RepresentativeFrame(clip); ok {
		t.Error("RepresentativeFrame accepted a marker pair below the minimum frame size")
	}
}

func TestReduceVideo(t *testing.T) {
	frame := fakeJPEG(4096)
	p := &Payload{MIMEType: "video/x-msvideo", Data: buildClip(frame)}

	reduced := ReduceVideo(p)
	if reduced.MIMEType != "image/jpeg" {
		t.Errorf("reduced MIMEType = %q, want image/jpeg", reduced.MIMEType)
	}
	if !bytes.Equal(reduced.Data, frame) {
		t.Error("reduced payload is not the embedded frame")
	}

	// No frame: the clip passes through untouched.
	noFrames := &Payload{MIMEType: "video/mp4", Data: make([]byte, 2048)}
	if got := ReduceVideo(noFrames); got != noFrames {
		t.Error("ReduceVideo modified a clip with no embedded frame")
	}
}
