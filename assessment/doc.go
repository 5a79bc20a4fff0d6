// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package assessment implements the heart-disease risk questionnaire controller.

# Field Catalogue

Fields lists the 17 questions in display order with their labels, kinds,
bounds and option codes. Every front end (HTML page, terminal form, JSON API)
reads it, and EncodeRequest uses it to transcode answers:

	yes/no       → 1/0
	male/female  → 1/0
	ageCategory  → 0..5 (18-24 ... 65+)
	race         → 0..2 (white, black, other)
	generalHealth→ 0..3 (very-good, good, fair, poor)

# Controller

A Controller holds one session's answers and moves through

	idle → submitting → success | failure → idle

	c := assessment.NewController(client)
	c.UpdateField(models.FieldSmoker, "yes")
	...
	result, err := c.Submit(ctx)
	view := assessment.RenderResult(result)

Submit is refused with ErrIncomplete while any answer is empty, with a
*ValidationError when an answer is outside its domain, and with
ErrSubmitInFlight while another submission is pending. Network, status and
decoding failures all become the generic error result.
*/
package assessment
