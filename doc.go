// Package tinyavif assembles the AV1 entropy writer (internal/entropy),
// OBU framing (internal/obu), and table data (internal/consts) into a
// minimal still-picture byte stream. It stops short of AV1 frame syntax:
// there is no sequence header, frame header, or tile group construction
// here, only the primitive write operations those higher layers would
// drive.
package tinyavif
