package sound3d

import (
	"github.com/ngld/knossos/packages/libopenal"
)

// Source is a positioned sound emitter.
type Source struct {
	al *libopenal.AL
	id uint32

	// buffers queued through QueueBuffers, oldest first
	queue []*Buffer
}

func (s *Source) ID() uint32 {
	return s.id
}

func (s *Source) Play() {
	s.al.SourcePlay(s.id)
}

func (s *Source) Pause() {
	s.al.SourcePause(s.id)
}

func (s *Source) Stop() {
	s.al.SourceStop(s.id)
}

func (s *Source) Rewind() {
	s.al.SourceRewind(s.id)
}

// State returns libopenal.Initial, Playing, Paused or Stopped.
func (s *Source) State() int32 {
	return s.al.GetSourcei(s.id, libopenal.SourceState)
}

func (s *Source) Playing() bool {
	return s.State() == libopenal.Playing
}

func (s *Source) Pitch() float32 {
	return s.al.GetSourcef(s.id, libopenal.Pitch)
}

func (s *Source) SetPitch(value float32) {
	s.al.Sourcef(s.id, libopenal.Pitch, value)
}

func (s *Source) Gain() float32 {
	return s.al.GetSourcef(s.id, libopenal.Gain)
}

func (s *Source) SetGain(value float32) {
	s.al.Sourcef(s.id, libopenal.Gain, value)
}

func (s *Source) MinGain() float32 {
	return s.al.GetSourcef(s.id, libopenal.MinGain)
}

func (s *Source) SetMinGain(value float32) {
	s.al.Sourcef(s.id, libopenal.MinGain, value)
}

func (s *Source) MaxGain() float32 {
	return s.al.GetSourcef(s.id, libopenal.MaxGain)
}

func (s *Source) SetMaxGain(value float32) {
	s.al.Sourcef(s.id, libopenal.MaxGain, value)
}

func (s *Source) MaxDistance() float32 {
	return s.al.GetSourcef(s.id, libopenal.MaxDistance)
}

func (s *Source) SetMaxDistance(value float32) {
	s.al.Sourcef(s.id, libopenal.MaxDistance, value)
}

func (s *Source) ReferenceDistance() float32 {
	return s.al.GetSourcef(s.id, libopenal.ReferenceDistance)
}

func (s *Source) SetReferenceDistance(value float32) {
	s.al.Sourcef(s.id, libopenal.ReferenceDistance, value)
}

func (s *Source) RolloffFactor() float32 {
	return s.al.GetSourcef(s.id, libopenal.RolloffFactor)
}

func (s *Source) SetRolloffFactor(value float32) {
	s.al.Sourcef(s.id, libopenal.RolloffFactor, value)
}

func (s *Source) ConeOuterGain() float32 {
	return s.al.GetSourcef(s.id, libopenal.ConeOuterGain)
}

func (s *Source) SetConeOuterGain(value float32) {
	s.al.Sourcef(s.id, libopenal.ConeOuterGain, value)
}

func (s *Source) Position() Vec3f {
	return vec3(s.al.GetSource3f(s.id, libopenal.Position))
}

func (s *Source) SetPosition(v Vec3f) {
	s.al.Source3f(s.id, libopenal.Position, v.X, v.Y, v.Z)
}

func (s *Source) Velocity() Vec3f {
	return vec3(s.al.GetSource3f(s.id, libopenal.Velocity))
}

func (s *Source) SetVelocity(v Vec3f) {
	s.al.Source3f(s.id, libopenal.Velocity, v.X, v.Y, v.Z)
}

func (s *Source) Direction() Vec3f {
	return vec3(s.al.GetSource3f(s.id, libopenal.Direction))
}

func (s *Source) SetDirection(v Vec3f) {
	s.al.Source3f(s.id, libopenal.Direction, v.X, v.Y, v.Z)
}

// Relative reports whether the position is relative to the listener.
func (s *Source) Relative() bool {
	return s.al.GetSourcei(s.id, libopenal.SourceRelative) == libopenal.True
}

func (s *Source) SetRelative(relative bool) {
	s.al.Sourcei(s.id, libopenal.SourceRelative, alBool(relative))
}

func (s *Source) Looping() bool {
	return s.al.GetSourcei(s.id, libopenal.Looping) == libopenal.True
}

func (s *Source) SetLooping(looping bool) {
	s.al.Sourcei(s.id, libopenal.Looping, alBool(looping))
}

func (s *Source) BuffersQueued() int {
	return int(s.al.GetSourcei(s.id, libopenal.BuffersQueued))
}

func (s *Source) BuffersProcessed() int {
	return int(s.al.GetSourcei(s.id, libopenal.BuffersProcessed))
}

// SetBuffer attaches buf as the static buffer of the source. nil detaches the current one.
// Either way the streaming queue is replaced.
func (s *Source) SetBuffer(buf *Buffer) error {
	var id uint32
	if buf != nil {
		id = buf.id
	}

	s.al.Sourcei(s.id, libopenal.Buffer, int32(id))
	if err := s.al.Check("failed to attach buffer"); err != nil {
		return err
	}

	s.queue = s.queue[:0]
	return nil
}

// QueueBuffers appends buffers to the streaming queue of the source.
func (s *Source) QueueBuffers(buffers ...*Buffer) error {
	s.al.SourceQueueBuffers(s.id, bufferIDs(buffers)...)
	if err := s.al.Check("failed to queue buffers"); err != nil {
		return err
	}

	s.queue = append(s.queue, buffers...)
	return nil
}

// UnqueueBuffers removes the n oldest buffers from the queue and returns them. They must
// have been processed already. Buffers queued through QueueBuffers come back as the
// same objects; anything else gets a new handle.
func (s *Source) UnqueueBuffers(n int) ([]*Buffer, error) {
	if n <= 0 {
		return nil, nil
	}

	ids := s.al.SourceUnqueueBuffers(s.id, n)
	if err := s.al.Check("failed to unqueue buffers"); err != nil {
		return nil, err
	}

	result := make([]*Buffer, len(ids))
	for idx, id := range ids {
		result[idx] = s.takeQueued(id)
	}
	return result, nil
}

func (s *Source) takeQueued(id uint32) *Buffer {
	for idx, buf := range s.queue {
		if buf.id == id {
			s.queue = append(s.queue[:idx], s.queue[idx+1:]...)
			return buf
		}
	}

	return &Buffer{al: s.al, id: id}
}

// Delete stops the source and frees it.
func (s *Source) Delete() {
	if s.id == 0 {
		return
	}

	s.al.SourceStop(s.id)
	s.al.DeleteSources(s.id)
	s.id = 0
	s.queue = nil
}

func bufferIDs(buffers []*Buffer) []uint32 {
	ids := make([]uint32, len(buffers))
	for idx, buf := range buffers {
		ids[idx] = buf.id
	}
	return ids
}

func alBool(value bool) int32 {
	if value {
		return libopenal.True
	}
	return libopenal.False
}
