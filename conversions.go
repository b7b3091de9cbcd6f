package census

import (
	"fmt"
	"strconv"
	"strings"
)

func toFloat(xIn any, strict bool) (xOut any, err error) {
	if x, ok := xIn.(float64); ok {
		return x, nil
	}

	if strict {
		return nil, fmt.Errorf("conversion not allowed")
	}

	if x, ok := xIn.(int); ok {
		return float64(x), nil
	}

	if x, ok := xIn.(string); ok {
		var tmp float64
		if tmp, err = strconv.ParseFloat(strings.TrimSpace(x), 64); err != nil {
			return nil, err
		}
		return tmp, nil
	}

	return nil, fmt.Errorf("cannot convert type to float")
}

func toInt(xIn any, strict bool) (xOut any, err error) {
	if x, ok := xIn.(int); ok {
		return x, nil
	}

	if strict {
		return nil, fmt.Errorf("conversion not allowed")
	}

	if x, ok := xIn.(float64); ok {
		return int(x), nil
	}

	if x, ok := xIn.(string); ok {
		var tmp int64
		if tmp, err = strconv.ParseInt(strings.TrimSpace(x), 10, 32); err != nil {
			return nil, err
		}
		return int(tmp), nil
	}

	return nil, fmt.Errorf("cannot convert type to int")
}

func toString(xIn any, strict bool) (xOut any, err error) {
	if x, ok := xIn.(string); ok {
		return x, nil
	}

	if strict {
		return nil, fmt.Errorf("conversion not allowed")
	}

	return fmt.Sprintf("%v", xIn), nil
}
