package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/require"
)

func Test_objectKey(t *testing.T) {
	require.Equal(t, "ledger/backup.json", objectKey(&UploadObject{Key: "ledger/backup.json", Prefix: "x"}))
	require.Equal(t, "backups/a.json", objectKey(&UploadObject{Prefix: "backups", FileName: "a.json"}))
	require.Equal(t, "a.json", objectKey(&UploadObject{FileName: "a.json"}))
}

func Test_isNotFound(t *testing.T) {
	require.True(t, isNotFound(awserr.New(s3.ErrCodeNoSuchKey, "missing", nil)))
	require.True(t, isNotFound(fmt.Errorf("wrapped: %w", awserr.New("NotFound", "missing", nil))))
	require.False(t, isNotFound(awserr.New("AccessDenied", "nope", nil)))
	require.False(t, isNotFound(errors.New("boom")))
}
