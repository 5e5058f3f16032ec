package fsxs3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Abraxas-365/jobboard/pkg/fsx"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	puts    []*s3.PutObjectInput
	failPut error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.failPut != nil {
		return nil, f.failPut
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts = append(f.puts, in)
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func TestS3FileSystemRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newFakeS3()
	fs := NewS3FileSystem(client, "board", "jobs-store")

	_, err := fs.ReadFile(ctx, "all-jobs")
	require.Error(t, err)
	assert.True(t, fsx.IsNotExist(err))

	require.NoError(t, fs.WriteFile(ctx, "all-jobs", []byte(`[]`)))
	require.Len(t, client.puts, 1)
	assert.Equal(t, "jobs-store/all-jobs", aws.ToString(client.puts[0].Key))
	assert.Equal(t, "application/json", aws.ToString(client.puts[0].ContentType))

	data, err := fs.ReadFile(ctx, "all-jobs")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	ok, err := fs.Exists(ctx, "all-jobs")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestS3FileSystemWriteError(t *testing.T) {
	client := newFakeS3()
	client.failPut = errors.New("access denied")
	fs := NewS3FileSystem(client, "board", "")

	err := fs.WriteFile(context.Background(), "all-jobs", []byte(`[]`))
	require.Error(t, err)
	assert.False(t, fsx.IsNotExist(err))
}
