package rosu

import "encoding/json"

// classify maps a response status onto the error taxonomy. It is a pure
// function of (status, body) apart from the 429 warning log.
//
//	200 → body returned for deserialization
//	404 → ErrNotFound
//	503 → ServiceUnavailableError carrying the maintenance message
//	429 → logged, then classified like any other error status; the rate
//	      limiter should prevent these, so one slipping through points at a
//	      configuration problem or another actor on the same credentials
//	 *  → APIError if the body parses as the API error shape,
//	      UnexpectedStatusError otherwise
func (c *Client) classify(status int, body []byte) ([]byte, error) {
	switch status {
	case 200:
		return body, nil
	case 404:
		return nil, ErrNotFound
	case 503:
		return nil, &ServiceUnavailableError{Body: string(body)}
	case 429:
		if c.logger != nil {
			c.logger.Warn("Got a 429 response")
		}
	}

	var payload ErrorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &UnexpectedStatusError{
			StatusCode: status,
			Body:       string(body),
			Cause:      err,
		}
	}

	return nil, &APIError{
		StatusCode: status,
		Body:       string(body),
		Payload:    payload,
	}
}

// parseJSON decodes a success body, keeping the raw text on failure.
func parseJSON[T any](body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, &ParseError{Body: string(body), Cause: err}
	}
	return v, nil
}
