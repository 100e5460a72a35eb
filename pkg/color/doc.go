// Package color provides the RGB color model used to compare language colors.
//
// # Overview
//
// A [Color] is a plain (R, G, B) triple of integer channels. Colors are
// parsed from the 6-digit web notation used by GitHub linguist ("#3572A5")
// with [Parse], formatted back with [Color.Hex], and compared with
// [Distance], the Euclidean distance in RGB space.
//
//	py := color.MustParse("#3572A5")
//	js := color.MustParse("#f1e05a")
//	fmt.Println(py.Hex(), color.Distance(py, js))
//
// # Channel Range
//
// [Parse] can only produce channels in [0, 255] because each channel is read
// from exactly two hex digits. The [Color] type itself does not enforce the
// range; colors built by hand may carry any int. [Color.Valid] reports whether
// all channels are in range, and [Color.Hex] formats out-of-range channels
// unchecked (e.g. 300 becomes "12C").
//
// # Errors
//
// Malformed input yields a [*FormatError]. It matches [ErrFormat] with
// errors.Is so callers can decide to skip a record or fail the whole run:
//
//	c, err := color.Parse(raw)
//	if errors.Is(err, color.ErrFormat) {
//	    // skip this language
//	}
package color
