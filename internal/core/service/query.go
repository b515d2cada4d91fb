package service

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// Query-string helpers shared by the resource proxies. Scalar filters use
// their string representation; slice-valued filters are serialized as JSON
// text, which is the encoding the ClickUp API expects.

func setBool(q url.Values, key string, v *bool) {
	if v != nil {
		q.Set(key, strconv.FormatBool(*v))
	}
}

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

func setInt64(q url.Values, key string, v *int64) {
	if v != nil {
		q.Set(key, strconv.FormatInt(*v, 10))
	}
}

func setString(q url.Values, key string, v *string) {
	if v != nil && *v != "" {
		q.Set(key, *v)
	}
}

func setJSONArray[T any](q url.Values, key string, v []T) {
	if len(v) == 0 {
		return
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return
	}
	q.Set(key, string(encoded))
}
