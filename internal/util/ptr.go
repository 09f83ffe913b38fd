package util

func StringPtr(v string) *string { return &v }
