// Package channel provides blocking completion I/O over borrowed channels.
//
// A single-shot channel write or read may transfer fewer bytes than asked
// for. The helpers here loop until the full request is satisfied, or fail
// with an error; they never return a silent short count.
//
//   - WriteFull writes every byte of a buffer from an offset onward.
//   - ReadFull fills a buffer or fails with an end-of-stream error.
//   - WriteFullString writes a text payload to a CharacterChannel, measuring
//     completion in bytes of the encoded payload.
//
// The channels are owned by the caller. Nothing in this package closes them.
//
// FileChannel and TextChannel adapt ordinary io.Reader and io.Writer values,
// such as the files returned by the opener package, into the Channel and
// CharacterChannel capabilities.
package channel
