// SPDX-License-Identifier: EPL-2.0

// Package sphere reads and writes NIST SPHERE audio files.
//
// A SPHERE file is a fixed-size ASCII header (see the header package)
// followed by raw interleaved PCM samples. This package provides the
// streaming side: a Reader serving frames by position and a Writer that
// emits the header lazily and patches it on Close.
//
// # Reading
//
//	r, err := sphere.Open("speech.sph")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	info := r.Params()              // header fields in file order
//	_ = r.SetPos(16000)             // no I/O yet
//	frames, err := r.ReadFrames(160) // one seek, then one read
//
// Reads past the declared sample_count return fewer bytes without an
// error. ReadFrames(-1) returns everything left.
//
// # Writing
//
//	w, err := sphere.Create("out.sph")
//	if err != nil {
//	    return err
//	}
//	_ = w.Set("channel_count", 1)
//	_ = w.Set("sample_n_bytes", 2)
//	_ = w.Set("sample_rate", 16000)
//	err = w.WriteFramesRaw(pcm)
//	err = w.Close() // sample_count now matches the frames written
//
// channel_count and sample_n_bytes are always required. sample_rate is
// required unless sample_coding is set to something other than pcm or
// ulaw. Missing fields are reported by the first write with
// ErrMissingChannelCount, ErrMissingSampleWidth or ErrMissingSampleRate,
// all of which wrap ErrIncompleteParams, and nothing reaches the sink.
//
// The header keeps its configured size (1024 bytes by default). A header
// that would outgrow it fails with header.ErrHeaderTooLarge.
//
// # Byte Order
//
// Samples handed to and returned from streams are in host byte order.
// Stored data is assumed to be little endian, so multi-byte samples are
// swapped on big-endian hosts only. sample_byte_format is carried as a
// header field but not used to pick the direction.
//
// # Ownership
//
// OpenRead and OpenWrite never close the handle they are given. Open and
// Create own their file and close it on Close and on every failure while
// opening.
//
// Readers and Writers are not safe for concurrent use.
package sphere
