package opengl

// Matrices are uploaded without transposing, so the row-vector matrices
// built on the CPU multiply column vectors on the left in GLSL.

const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPos;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;
layout(location = 3) in vec4 inColor;

uniform mat4 mvp;
uniform mat4 model;
uniform bool isPoints;
uniform float pointScale;

out vec3 fragWorldPos;
out vec3 fragNormal;
out vec4 fragColor;

void main() {
    vec4 world   = model * vec4(inPos, 1.0);
    fragWorldPos = world.xyz;
    fragNormal   = mat3(model) * inNormal;
    fragColor    = inColor;
    gl_Position  = mvp * vec4(inPos, 1.0);
    // point meshes carry their pixel size in uv.x
    gl_PointSize = isPoints ? max(inUV.x * pointScale, 1.0) : 1.0;
}
` + "\x00"

const fragSrc = `
#version 410 core
in vec3 fragWorldPos;
in vec3 fragNormal;
in vec4 fragColor;

uniform vec3  lightPos;
uniform vec3  lightColor;
uniform float lightIntensity;
uniform vec3  ambientColor;

uniform vec4  matAlbedo;
uniform float opacity;
uniform bool  flatShading;
uniform bool  unlit;
uniform bool  isPoints;

out vec4 outColor;

// Narkowicz ACES filmic fit
vec3 aces(vec3 x) {
    return clamp((x * (2.51 * x + 0.03)) / (x * (2.43 * x + 0.59) + 0.14), 0.0, 1.0);
}

void main() {
    vec4 base = fragColor * matAlbedo;

    if (isPoints) {
        // soft round sprite
        vec2 d = gl_PointCoord * 2.0 - 1.0;
        float r2 = dot(d, d);
        if (r2 > 1.0) discard;
        outColor = vec4(base.rgb, base.a * opacity * (1.0 - r2));
        return;
    }
    if (unlit) {
        outColor = vec4(base.rgb, base.a * opacity);
        return;
    }

    vec3 n;
    if (flatShading) {
        n = normalize(cross(dFdx(fragWorldPos), dFdy(fragWorldPos)));
    } else {
        n = normalize(fragNormal);
        if (!gl_FrontFacing) n = -n;
    }
    vec3 l = normalize(lightPos - fragWorldPos);
    float diff = max(dot(n, l), 0.0);

    vec3 rgb = aces(base.rgb * (ambientColor + lightColor * lightIntensity * diff));
    outColor = vec4(rgb, base.a * opacity);
}
` + "\x00"
