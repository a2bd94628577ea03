package api

import "snackbot/internal/pkg/errs"

var errMissingCode = errs.New("missing oauth code")
