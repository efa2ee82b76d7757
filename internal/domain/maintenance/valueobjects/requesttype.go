package valueobjects

import "fmt"

type RequestType string

const (
	RequestTypeCorrective RequestType = "Corrective"
	RequestTypePreventive RequestType = "Preventive"
)

func NewRequestType(s string) (RequestType, error) {
	rt := RequestType(s)
	if !rt.IsValid() {
		return "", fmt.Errorf("invalid request type: %q", s)
	}
	return rt, nil
}

func (rt RequestType) String() string {
	return string(rt)
}

func (rt RequestType) IsValid() bool {
	return rt == RequestTypeCorrective || rt == RequestTypePreventive
}
