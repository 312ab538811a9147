package media

import "bytes"

// JPEG marker bytes used by the frame scan.
var (
	jpegSOI = []byte{0xFF, 0xD8, 0xFF} // start of image
	jpegEOI = []byte{0xFF, 0xD9}       // end of image
)

// minFrameBytes filters out marker collisions that are too small to be a
// real frame.
const minFrameBytes = 1024

// RepresentativeFrame scans a video payload for a complete embedded JPEG
// image and returns its bytes. Motion-JPEG style containers interleave whole
// JPEG frames, so a marker scan recovers a still without decoding the
// container. The second return value reports whether a frame was found.
func RepresentativeFrame(data []byte) ([]byte, bool) {
	offset := 0
	for {
		start := bytes.Index(data[offset:], jpegSOI)
		if start < 0 {
			return nil, false
		}
		start += offset

		end := bytes.Index(data[start:], jpegEOI)
		if end < 0 {
			return nil, false
		}

		frame := data[start : start+end+len(jpegEOI)]
		if len(frame) >= minFrameBytes {
			// Copy so the caller does not pin the whole clip in memory.
			out := make([]byte, len(frame))
			copy(out, frame)
			return out, true
		}

		// Too small to be a frame; keep scanning past this marker.
		offset = start + len(jpegSOI)
	}
}

// ReduceVideo substitutes a single still frame for a video clip when one can
// be recovered. When no frame is found the clip is returned unchanged and is
// sent inline as-is.
func ReduceVideo(p *Payload) *Payload {
	frame, ok := RepresentativeFrame(p.Data)
	if !ok {
		return p
	}
	return &Payload{MIMEType: "image/jpeg", Data: frame}
}
