package scene

// Decorative element scripts injected into the VR session body, one per topic.

const forestElements = `
                // Add some floating logs and leaves
                const log1 = document.createElement('div');
                log1.classList.add('floating-element');
                log1.textContent = "Log";
                log1.style.left = '50px';
                log1.style.top = '50px';
                document.body.appendChild(log1);

                const leaf1 = document.createElement('div');
                leaf1.classList.add('floating-element');
                leaf1.style.backgroundImage = "url('leaf.png')";
                leaf1.style.left = '150px';
                leaf1.style.top = '150px';
                document.body.appendChild(leaf1);
`

const cityElements = `
                // Add some floating bricks
                const brick1 = document.createElement('div');
                brick1.classList.add('floating-element');
                brick1.textContent = "Brick";
                brick1.style.left = '70px';
                brick1.style.top = '70px';
                document.body.appendChild(brick1);

                const brick2 = document.createElement('div');
                brick2.classList.add('floating-element');
                brick2.textContent = "Glass";
                brick2.style.left = '200px';
                brick2.style.top = '200px';
                document.body.appendChild(brick2);
`

const underwaterElements = `
                // Add some floating fish
                const fish1 = document.createElement('div');
                fish1.classList.add('floating-element');
                fish1.textContent = "Fish";
                fish1.style.left = '100px';
                fish1.style.top = '100px';
                document.body.appendChild(fish1);

                const fish2 = document.createElement('div');
                fish2.classList.add('floating-element');
                fish2.style.backgroundImage = "url('fish.png')";
                fish2.style.left = '250px';
                fish2.style.top = '250px';
                document.body.appendChild(fish2);
`

// RenderEnvironmentElements returns the decorative script fragment for the
// topic. Topics without a case yield an empty fragment.
func RenderEnvironmentElements(topic Topic) string {
	switch topic {
	case TopicForest:
		return forestElements
	case TopicCity:
		return cityElements
	case TopicUnderwater:
		return underwaterElements
	default:
		return ""
	}
}
