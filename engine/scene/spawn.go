package scene

import (
	"github.com/Carmen-Shannon/oxy-reef/engine/animator"
	"github.com/Carmen-Shannon/oxy-reef/engine/game_object"
	"github.com/Carmen-Shannon/oxy-reef/engine/loader"
	"github.com/Carmen-Shannon/oxy-reef/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-reef/engine/placer"

	"github.com/go-gl/mathgl/mgl32"
)

// spawnCorals waits for every coral model, scatters one placement pass across all of them and
// plants an instance per record whose model loaded. Records of failed models are dropped.
func (s *sceneAnimator) spawnCorals(futures []*loader.Future) {
	defer s.wg.Done()

	assets := make([]*loader.Asset, len(futures))
	for i, f := range futures {
		a, err := f.Wait()
		if err != nil {
			s.logger.Printf("coral model %d omitted: %v", i, err)
			continue
		}
		assets[i] = a
	}
	if len(futures) == 0 {
		return
	}

	records := s.placer.Place(len(futures), s.cfg.CoralsPerModel, s.cfg.FloorSize, s.cfg.CoralMinDist, s.cfg.CoralAttempts)
	s.mu.Lock()
	s.skipped = s.placer.Skipped()
	s.mu.Unlock()

	transforms := placer.Transforms(records, s.cfg.CoralScales)
	for i, rec := range records {
		a := assets[rec.ModelIndex]
		if a == nil {
			continue
		}
		s.add(game_object.NewGameObject(game_object.KindCoral,
			game_object.WithAsset(a),
			game_object.WithModelIndex(rec.ModelIndex),
			game_object.WithTransform(transforms[i]),
			game_object.WithColor(colorAt(s.cfg.CoralColors, rec.ModelIndex)),
			game_object.WithEnabled(false),
		))
	}
}

// spawnFish waits for one fish model and releases FishPerModel roaming copies of it, each with
// its own mixer looping the swim clip at a rate matching the copy's speed.
func (s *sceneAnimator) spawnFish(index int, f *loader.Future) {
	defer s.wg.Done()

	a, err := f.Wait()
	if err != nil {
		s.logger.Printf("fish model %d omitted: %v", index, err)
		return
	}
	if !a.Animated() {
		s.logger.Printf("no animations found for fish model %s", a.Path)
	}

	scale := scaleAt(s.cfg.FishScales, index)
	for range s.cfg.FishPerModel {
		opts := []locomotion.RoamingEntityBuilderOption{
			locomotion.WithModelIndex(index),
			locomotion.WithScale(scale),
		}
		var mixer animator.Mixer
		if a.Animated() {
			opts = append(opts, locomotion.WithAnimation(func(rate float32) locomotion.AnimationState {
				mixer = animator.NewMixer(a.Clips, animator.WithAutoplay(animator.SwimKeyword), animator.WithSpeed(rate))
				return mixer
			}))
		}

		body := locomotion.NewRoamingEntity(nil, s.cfg.FloorSize, opts...)
		s.add(game_object.NewGameObject(game_object.KindFish,
			game_object.WithAsset(a),
			game_object.WithModelIndex(index),
			game_object.WithRoaming(body),
			game_object.WithMixer(mixer),
			game_object.WithColor(colorAt(s.cfg.FishColors, index)),
			game_object.WithEnabled(false),
		))
	}
}

func (s *sceneAnimator) spawnSculpture(spec SculptureSpec, f *loader.Future) {
	defer s.wg.Done()

	a, err := f.Wait()
	if err != nil {
		s.logger.Printf("sculpture %s omitted: %v", spec.Path, err)
		return
	}
	scale := spec.Scale
	if scale <= 0 {
		scale = 1
	}
	s.add(game_object.NewGameObject(game_object.KindSculpture,
		game_object.WithAsset(a),
		game_object.WithPosition(spec.Position),
		game_object.WithRotation(spec.Rotation),
		game_object.WithScale(mgl32.Vec3{scale, scale, scale}),
		game_object.WithColor(spec.Color),
		game_object.WithEnabled(false),
	))
}
